package admin

type StatisticsResponse struct {
	TotalProfiles    int `json:"total_profiles"`
	VerifiedProfiles int `json:"verified_profiles"`
	PendingRequests  int `json:"pending_requests"`
	PendingDocuments int `json:"pending_documents"`
}
