package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "Student"
	RoleTeacher RoleType = "Teacher"
	RoleVisitor RoleType = "Visitor"
)

// ResourceType is the file type of a shared resource. The set is open:
// uploads may carry any extension, so values are not validated.
type ResourceType string

const (
	TypePDF  ResourceType = "pdf"
	TypePPTX ResourceType = "pptx"
	TypeDOCX ResourceType = "docx"
)

// TypeFilterAll and GradeFilterAll are the sentinel filter values meaning
// "do not filter on this field".
const (
	TypeFilterAll  = "all"
	GradeFilterAll = "all"
)
