package errors

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	SheetsStatus int    `json:"sheets_status,omitempty"`
	SheetsBody   string `json:"sheets_body,omitempty"`
}

// Dump flattens an error chain into loggable fields, surfacing Google API
// failures when the spreadsheet backend is the cause.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		d.SheetsStatus = apiErr.Code
		d.SheetsBody = apiErr.Message
	}

	return d
}
