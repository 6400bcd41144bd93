package web

import "errors"

type response struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Errors  []string       `json:"errors,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

func ok(message string) response {
	return response{
		Success: true,
		Message: message,
	}
}

func (r response) With(key string, value any) response {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
	r.Data[key] = value
	return r
}

func failure(err error) response {
	r := response{Success: false}
	for _, e := range unwrap(err) {
		r.Errors = append(r.Errors, e.Error())
	}
	if len(r.Errors) > 0 {
		r.Message = r.Errors[0]
	}
	return r
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}
