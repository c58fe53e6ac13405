package dto

import (
	"time"

	"github.com/spec-kit/todo-dashboard/internal/domain"
)

// InputDateLayout is the add/edit surface date format. Storage and repository
// operations keep DD/MM/YYYY; the conversion happens only at this boundary.
const InputDateLayout = "2006-01-02"

// TodoCreateRequest payload for the add flow. DueDate arrives as YYYY-MM-DD.
type TodoCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	DueTime     string `json:"dueTime"`
}

// TodoUpdateRequest payload for the edit flow. Any field may change,
// including status.
type TodoUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	DueTime     string `json:"dueTime"`
	Status      string `json:"status"`
}

// InputDateToStored converts a YYYY-MM-DD input date to the stored
// DD/MM/YYYY layout.
func InputDateToStored(input string) (string, error) {
	t, err := time.Parse(InputDateLayout, input)
	if err != nil {
		return "", err
	}
	return t.Format(domain.DueDateLayout), nil
}

// StoredDateToInput converts a stored DD/MM/YYYY date back to the input
// surface layout, used when prefilling edit forms.
func StoredDateToInput(stored string) (string, error) {
	t, err := time.Parse(domain.DueDateLayout, stored)
	if err != nil {
		return "", err
	}
	return t.Format(InputDateLayout), nil
}
