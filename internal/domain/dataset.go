package domain

import "errors"

var (
	// ErrWrongPassword indicates that the supplied access password does not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrInvalidDataset indicates that an imported dataset violates an invariant.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// Dataset is the whole persisted state, used by export and import.
type Dataset struct {
	Settings     Settings           `json:"settings"`
	Rates        map[string]float64 `json:"rates"`
	Categories   []Category         `json:"categories"`
	Transactions []Transaction      `json:"transactions"`
}
