package validate

import "regexp"

var (
	flightNumberRe = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)
	airportCodeRe  = regexp.MustCompile(`^[A-Za-z]{4}$`)
)

// ValidateFlightNumber — буквы, за которыми сразу идут цифры (LH456).
func ValidateFlightNumber(s string) bool { return flightNumberRe.MatchString(s) }

// ValidateAirportCode — ровно четыре латинские буквы в любом регистре (ICAO: EDDF).
func ValidateAirportCode(s string) bool { return airportCodeRe.MatchString(s) }
