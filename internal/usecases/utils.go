package usecases

import "github.com/volatiletech/null/v8"

func optionalString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
