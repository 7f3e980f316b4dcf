package employee

// Create and update requests bind from multipart form fields; the profile
// image travels beside them as a file part.

type CreateEmployeeRequest struct {
	Name          string `form:"name" json:"name" binding:"required,min=3,max=20"`
	Gender        string `form:"gender" json:"gender" binding:"required,min=3,max=20"`
	DOB           string `form:"dob" json:"dob" binding:"required,len=10"`
	Address       string `form:"address" json:"address" binding:"required,min=3,max=50"`
	Mobile        string `form:"mobile" json:"mobile" binding:"required,phone"`
	Email         string `form:"email" json:"email" binding:"required,email"`
	DepartmentID  string `form:"department" json:"department" binding:"required,min=3,max=36"`
	DesignationID string `form:"designation" json:"designation" binding:"required,min=3,max=36"`
	DOJ           string `form:"doj" json:"doj" binding:"required,min=3,max=25"`
}

// UpdateEmployeeRequest validates only the fields actually present; nil
// pointers leave the stored value untouched.
type UpdateEmployeeRequest struct {
	Name          *string `form:"name" json:"name" binding:"omitempty,min=3,max=20"`
	Gender        *string `form:"gender" json:"gender" binding:"omitempty,min=3,max=20"`
	DOB           *string `form:"dob" json:"dob" binding:"omitempty,len=10"`
	Address       *string `form:"address" json:"address" binding:"omitempty,min=3,max=50"`
	Mobile        *string `form:"mobile" json:"mobile" binding:"omitempty,phone"`
	Email         *string `form:"email" json:"email" binding:"omitempty,email"`
	DepartmentID  *string `form:"department" json:"department" binding:"omitempty,min=3,max=36"`
	DesignationID *string `form:"designation" json:"designation" binding:"omitempty,min=3,max=36"`
	DOJ           *string `form:"doj" json:"doj" binding:"omitempty,min=3,max=25"`
}

// EmployeeResponse is the list read-model: references stay raw identifiers.
type EmployeeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	Address       string `json:"address"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	DepartmentID  string `json:"department"`
	DesignationID string `json:"designation"`
	DOJ           string `json:"doj"`
	Profile       string `json:"profile"`
}

// EmployeeDetailResponse is the projected read-model: department and
// designation carry display names when the relation resolved, and fall back
// to the raw identifier when it did not.
type EmployeeDetailResponse struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	Address     string `json:"address"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	DOJ         string `json:"doj"`
	Profile     string `json:"profile"`
}
