package domain

import "fmt"

// Rating 年龄分级
type Rating string

const (
	RatingER Rating = "ER"
	RatingL  Rating = "L"
	Rating10 Rating = "10"
	Rating12 Rating = "12"
	Rating14 Rating = "14"
	Rating16 Rating = "16"
	Rating18 Rating = "18"
)

var ratings = []Rating{RatingER, RatingL, Rating10, Rating12, Rating14, Rating16, Rating18}

// Ratings 返回全部合法分级
func Ratings() []Rating {
	out := make([]Rating, len(ratings))
	copy(out, ratings)
	return out
}

func (r Rating) Valid() bool {
	for _, v := range ratings {
		if v == r {
			return true
		}
	}
	return false
}

// ParseRating 解析分级字符串，不在闭集内则报错
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown rating %q", s)
	}
	return r, nil
}
