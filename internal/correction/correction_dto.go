package correction

import (
	"time"
)

type RequestCorrectionRequest struct {
	TimeLogID          string  `json:"time_log_id" binding:"required,uuid"`
	RequestedStartTime *string `json:"requested_start_time"`
	RequestedEndTime   *string `json:"requested_end_time"`
	Reason             string  `json:"reason" binding:"required"`
}

type CorrectionResponse struct {
	ID                 string     `json:"id"`
	TimeLogID          string     `json:"time_log_id"`
	RequestedStartTime *time.Time `json:"requested_start_time"`
	RequestedEndTime   *time.Time `json:"requested_end_time"`
	Reason             string     `json:"reason"`
	Status             string     `json:"status"`
	ProcessedAt        *time.Time `json:"processed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	OriginalStartTime  *time.Time `json:"original_start_time,omitempty"`
	OriginalEndTime    *time.Time `json:"original_end_time,omitempty"`
}

func mapToResponse(c TimeCorrection) CorrectionResponse {
	resp := CorrectionResponse{
		ID:                 c.ID.String(),
		TimeLogID:          c.TimeLogID.String(),
		RequestedStartTime: c.RequestedStartTime,
		RequestedEndTime:   c.RequestedEndTime,
		Reason:             c.Reason,
		Status:             string(c.Status),
		ProcessedAt:        c.ProcessedAt,
		CreatedAt:          c.CreatedAt,
	}
	if c.TimeLog != nil {
		start := c.TimeLog.StartTime
		resp.OriginalStartTime = &start
		resp.OriginalEndTime = c.TimeLog.EndTime
	}
	return resp
}

func mapToListResponse(corrections []TimeCorrection) []CorrectionResponse {
	resp := make([]CorrectionResponse, 0, len(corrections))
	for _, c := range corrections {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}
