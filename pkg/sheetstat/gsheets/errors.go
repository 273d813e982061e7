package gsheets

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrCredentialsNotFound indicates neither credential tier produced credentials.
	ErrCredentialsNotFound = errors.New("gsheets: service account JSON not found")

	// ErrWorksheetNotFound indicates the worksheet index is out of range.
	ErrWorksheetNotFound = errors.New("gsheets: worksheet not found")

	// ErrSpreadsheetNotFound indicates the spreadsheet does not exist.
	ErrSpreadsheetNotFound = errors.New("gsheets: spreadsheet not found")

	// ErrPermissionDenied indicates the credentials cannot read the spreadsheet.
	ErrPermissionDenied = errors.New("gsheets: permission denied")
)

// WrapError converts a Google API error to a sentinel, keeping the
// original message.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, gerr.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, gerr.Message)
	default:
		return err
	}
}
