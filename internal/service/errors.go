package service

import "errors"

var ErrEmptyPrescription = errors.New("prescription has no medicines")
