package main

import "fmt"

type missingArgError struct {
	arg string
}

func (e *missingArgError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.arg)
}

func errMissingArg(arg string) error {
	return &missingArgError{arg: arg}
}
