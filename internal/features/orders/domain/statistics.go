package domain

// Statistics counts orders per lifecycle state.
type Statistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

// ComputeStatistics counts orders by status. Total always equals len(orders).
func ComputeStatistics(orders []*Order) Statistics {
	s := Statistics{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			s.Pending++
		case StatusInTransit:
			s.InTransit++
		case StatusDelivered:
			s.Delivered++
		case StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}

// ByStatus returns the per-status counts keyed by the status value.
func (s Statistics) ByStatus() map[string]int {
	return map[string]int{
		string(StatusPending):   s.Pending,
		string(StatusInTransit): s.InTransit,
		string(StatusDelivered): s.Delivered,
		string(StatusCancelled): s.Cancelled,
	}
}
