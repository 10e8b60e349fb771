package job

type AddJobRequest struct {
	Description  string `json:"description" binding:"required,max=1000"`
	Instructions string `json:"instructions"`
	TechnicianID *int64 `json:"technician_id"`
}

type AssignRequest struct {
	TechnicianID int64 `json:"technician_id" binding:"required"`
}

type CompleteRequest struct {
	Comments string `json:"comments"`
}

type PauseRequest struct {
	Reason string `json:"reason" binding:"required"`
}
