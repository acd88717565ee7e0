package entity

type DeleteFailure struct {
	Key   string
	Error string
}

type DeleteReport struct {
	Requested int
	Deleted   []string
	Failures  []DeleteFailure
}

func (r *DeleteReport) Complete() bool {
	return len(r.Deleted) == r.Requested
}
