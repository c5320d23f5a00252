package domain

type HealthCheckRequest struct {
	Name string `json:"name"`
}

type HealthCheckResponse struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

type ParseTimeRequest struct {
	Duration string `json:"duration"` // e.g. "2h 30m"
}

type ParseTimeResponse struct {
	Milliseconds int64 `json:"milliseconds"`
}

type SumTimesRequest struct {
	Durations []string `json:"durations"`
}

type SumTimesResponse struct {
	Total string `json:"total"` // canonical "<H>h <M>m"
}

type FormatTimeRequest struct {
	Time string `json:"time"` // e.g. "14:30" or "14:30:00Z"
}

type ParseDateRequest struct {
	Date string `json:"date"` // day first, D/M/YY or D/M/YYYY
}

type ParseDateResponse struct {
	Date string `json:"date"` // RFC 3339, midnight UTC
}

type FormatDateRequest struct {
	Date string `json:"date"`
}

type FormatCurrencyRequest struct {
	Amount float64 `json:"amount"`
}

type SumNumbersRequest struct {
	Numbers []float64 `json:"numbers"`
}

type SumNumbersResponse struct {
	Sum float64 `json:"sum"`
}

// FormattedResponse is shared by every Format* call.
type FormattedResponse struct {
	Formatted string `json:"formatted"`
}
