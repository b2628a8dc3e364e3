package bazi

import (
	"math"
	"time"
)

// validate checks Input for structural well-formedness and obvious range
// violations before any L0-L6 computation runs.
func validate(in Input) *Error {
	if math.IsNaN(in.Longitude) || math.IsInf(in.Longitude, 0) {
		return newError(InvalidInput, "longitude is not a finite number")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return newError(OutOfRange, "longitude %.4f out of range [-180, 180]", in.Longitude)
	}
	if in.Month < 1 || in.Month > 12 {
		return newError(InvalidInput, "month %d out of range [1, 12]", in.Month)
	}
	if in.Day < 1 || in.Day > 31 {
		return newError(InvalidInput, "day %d out of range [1, 31]", in.Day)
	}
	if in.Hour < 0 || in.Hour > 23 {
		return newError(InvalidInput, "hour %d out of range [0, 23]", in.Hour)
	}
	if in.Minute < 0 || in.Minute > 59 {
		return newError(InvalidInput, "minute %d out of range [0, 59]", in.Minute)
	}

	if in.DateType == Solar {
		if in.Year < 1900 || in.Year > 2100 {
			return newError(OutOfRange, "civil year %d out of range [1900, 2100]", in.Year)
		}
		normalized := time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.UTC)
		if normalized.Year() != in.Year || int(normalized.Month()) != in.Month || normalized.Day() != in.Day {
			return newError(InvalidInput, "%04d-%02d-%02d is not a valid Gregorian calendar date", in.Year, in.Month, in.Day)
		}
	} else {
		if in.Year < 1900 || in.Year > 2100 {
			return newError(OutOfRange, "lunar year %d out of range [1900, 2100]", in.Year)
		}
	}

	return nil
}
