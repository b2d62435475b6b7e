package dto

type AnalysisResponse struct {
	Success        bool   `json:"success" example:"true"`
	AIAnalysis     string `json:"aiAnalysis" example:"### 1. Image Type & Region ..."`
	ImagePreview   string `json:"imagePreview" example:"iVBORw0KGgo..."`
	PatientHistory string `json:"patientHistory" example:"type 2 diabetes"`
	ReferralNotes  string `json:"referralNotes" example:""`
}

type ErrorResponse struct {
	Error string `json:"error" example:"No image file provided"`
}
