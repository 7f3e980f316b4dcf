package employee

import "github.com/google/uuid"

// ProjectEmployee shapes a persisted employee into the detail read-model.
// Pure transform, no store access.
func ProjectEmployee(empl Employee) EmployeeDetailResponse {
	return EmployeeDetailResponse{
		Name:        empl.Name,
		Gender:      empl.Gender,
		DOB:         empl.DOB,
		Address:     empl.Address,
		Mobile:      empl.Mobile,
		Email:       empl.Email,
		Department:  departmentRef(empl).Display(),
		Designation: designationRef(empl).Display(),
		DOJ:         empl.DOJ,
		Profile:     empl.Profile,
	}
}

func departmentRef(empl Employee) Reference {
	if empl.Department != nil {
		return ResolvedRef(empl.Department.Name)
	}
	return UnresolvedRef(uuidToString(empl.DepartmentID))
}

func designationRef(empl Employee) Reference {
	if empl.Designation != nil {
		return ResolvedRef(empl.Designation.Name)
	}
	return UnresolvedRef(uuidToString(empl.DesignationID))
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID.String(),
		Name:          empl.Name,
		Gender:        empl.Gender,
		DOB:           empl.DOB,
		Address:       empl.Address,
		Mobile:        empl.Mobile,
		Email:         empl.Email,
		DepartmentID:  uuidToString(empl.DepartmentID),
		DesignationID: uuidToString(empl.DesignationID),
		DOJ:           empl.DOJ,
		Profile:       empl.Profile,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
