package form

// Field identifies one editable input of the task form.
type Field int

// Form fields, in display order.
const (
	FieldTitle Field = iota
	FieldDescription
	FieldDueDate
	FieldPriority
	FieldTags
	FieldStatus
	FieldAssignedTo
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldTitle,
	FieldDescription,
	FieldDueDate,
	FieldPriority,
	FieldTags,
	FieldStatus,
	FieldAssignedTo,
}

// Key returns the wire name of the field.
func (f Field) Key() string {
	switch f {
	case FieldTitle:
		return "task_title"
	case FieldDescription:
		return "task_desc"
	case FieldDueDate:
		return "task_duedate"
	case FieldPriority:
		return "task_priority"
	case FieldTags:
		return "task_tags"
	case FieldStatus:
		return "task_status"
	case FieldAssignedTo:
		return "task_assigned_to"
	}
	return ""
}

// Label returns the human-facing name of the field.
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldDueDate:
		return "Due date"
	case FieldPriority:
		return "Priority"
	case FieldTags:
		return "Tags"
	case FieldStatus:
		return "Status"
	case FieldAssignedTo:
		return "Task owner"
	}
	return ""
}

// Placeholder returns the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldTitle:
		return "Enter the task title"
	case FieldDescription:
		return "Enter the additional details or notes about the task"
	case FieldDueDate:
		return "YYYY-MM-DD"
	case FieldPriority:
		return "---- Select the task priority ----"
	case FieldTags:
		return "Enter the tags (comma separated labels or keywords)"
	case FieldStatus:
		return "---- Select the task status ----"
	case FieldAssignedTo:
		return "Enter the task owner name"
	}
	return ""
}

// requiredMessage is shown when the field is empty.
func (f Field) requiredMessage() string {
	switch f {
	case FieldTitle:
		return "Enter the task title"
	case FieldDescription:
		return "Enter the task description"
	case FieldDueDate:
		return "Enter the due date"
	case FieldPriority:
		return "Select the priority of task"
	case FieldTags:
		return "Enter the tags associated with this task"
	case FieldStatus:
		return "Select the task status"
	case FieldAssignedTo:
		return "Enter the name of task owner"
	}
	return ""
}

// fieldSet is a bitmask of fields.
type fieldSet uint16

func (s fieldSet) has(f Field) bool {
	return s&(1<<uint(f)) != 0
}

func (s fieldSet) with(f Field) fieldSet {
	return s | (1 << uint(f))
}
