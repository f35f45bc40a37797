package model

// Entity is the object of an access decision
type Entity struct {
	Type string
	ID   string
}

// Subject is the caller an access decision was made for
type Subject struct {
	Type string
	ID   string
}

const (
	EntityTeam    = "team"
	EntityDataset = "dataset"
	EntityComment = "comment"
	SubjectUser   = "user"
)
