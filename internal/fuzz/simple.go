package fuzz

import "fuzzyratio/internal/editdistance"

func simpleRatio(a, b string) int {
	return editdistance.Ratio(a, b)
}
