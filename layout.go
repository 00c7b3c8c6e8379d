package meetingtime

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is the canonical textual form, in CLDR pattern notation.
const Layout = "d MMM uuuu h:mma"

// maxYearDigits bounds "uuuu" to ±999,999,999.
const maxYearDigits = 9

var shortMonthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Format renders v in the canonical layout. Fields the layout cannot carry
// (seconds, nanoseconds) are dropped, and out-of-range fields are rendered so
// that they never parse back to v.
func Format(v civil.DateTime) string {
	b := make([]byte, 0, 24)
	b = strconv.AppendInt(b, int64(v.Date.Day), 10)
	b = append(b, ' ')
	if v.Date.Month >= time.January && v.Date.Month <= time.December {
		b = append(b, shortMonthNames[v.Date.Month-1]...)
	} else {
		b = strconv.AppendInt(b, int64(v.Date.Month), 10)
	}
	b = append(b, ' ')
	b = appendYear(b, v.Date.Year)
	b = append(b, ' ')
	h := v.Time.Hour % 12
	if h == 0 {
		h = 12
	}
	b = strconv.AppendInt(b, int64(h), 10)
	b = append(b, ':')
	if v.Time.Minute >= 0 && v.Time.Minute < 10 {
		b = append(b, '0')
	}
	b = strconv.AppendInt(b, int64(v.Time.Minute), 10)
	if v.Time.Hour >= 12 {
		b = append(b, "pm"...)
	} else {
		b = append(b, "am"...)
	}
	return string(b)
}

// appendYear follows the "uuuu" sign style: four digits without sign,
// a leading '+' above 9999 and a leading '-' (still padded to four digits)
// below zero.
func appendYear(b []byte, y int) []byte {
	switch {
	case y > 9999:
		b = append(b, '+')
	case y < 0:
		b = append(b, '-')
		y = -y
	}
	for w := 1000; w > 1 && y < w; w /= 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(y), 10)
}

type parser struct {
	s   string
	pos int
}

func (p *parser) fail(at int, reason string) *ParseError {
	return &ParseError{Input: p.s, Offset: at, Reason: reason}
}

func (p *parser) digits(lo, hi int, field string) (int, int, *ParseError) {
	start := p.pos
	n := 0
	v := 0
	for p.pos < len(p.s) && n < hi {
		c := p.s[p.pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		p.pos++
		n++
	}
	if n < lo {
		return 0, start, p.fail(start, "expected "+field)
	}
	return v, start, nil
}

func (p *parser) literal(c byte) *ParseError {
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return p.fail(p.pos, "expected "+strconv.QuoteRune(rune(c)))
	}
	p.pos++
	return nil
}

func (p *parser) month() (time.Month, *ParseError) {
	start := p.pos
	if len(p.s)-start >= 3 {
		tok := p.s[start : start+3]
		for i, name := range shortMonthNames {
			if tok == name {
				p.pos += 3
				return time.Month(i + 1), nil
			}
		}
	}
	return 0, p.fail(start, "expected month abbreviation (Jan..Dec)")
}

func (p *parser) year() (int, *ParseError) {
	start := p.pos
	var sign byte
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		sign = p.s[p.pos]
		p.pos++
	}
	digitsAt := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	n := p.pos - digitsAt
	switch {
	case n < 4:
		return 0, p.fail(start, "expected year of at least 4 digits")
	case n > maxYearDigits:
		return 0, p.fail(start, "year out of range")
	case sign == 0 && n > 4:
		return 0, p.fail(start, "year above 9999 requires a '+' sign")
	case sign == '+' && n == 4:
		return 0, p.fail(start, "year of 4 digits must not carry a '+' sign")
	}
	y, _ := strconv.Atoi(p.s[digitsAt:p.pos])
	if sign == '-' {
		if y == 0 {
			return 0, p.fail(start, "negative year zero")
		}
		y = -y
	}
	return y, nil
}

func (p *parser) meridiem() (bool, *ParseError) {
	if len(p.s)-p.pos >= 2 {
		switch p.s[p.pos : p.pos+2] {
		case "am":
			p.pos += 2
			return false, nil
		case "pm":
			p.pos += 2
			return true, nil
		}
	}
	return false, p.fail(p.pos, "expected am or pm")
}

// parse is the single strict parsing routine behind Parse, IsValid and the
// constructors.
func parse(s string) (civil.DateTime, *ParseError) {
	p := &parser{s: s}
	day, dayAt, err := p.digits(1, 2, "day of month")
	if err != nil {
		return civil.DateTime{}, err
	}
	if err := p.literal(' '); err != nil {
		return civil.DateTime{}, err
	}
	monthAt := p.pos
	month, err := p.month()
	if err != nil {
		return civil.DateTime{}, err
	}
	if err := p.literal(' '); err != nil {
		return civil.DateTime{}, err
	}
	year, err := p.year()
	if err != nil {
		return civil.DateTime{}, err
	}
	if err := p.literal(' '); err != nil {
		return civil.DateTime{}, err
	}
	hour, hourAt, err := p.digits(1, 2, "hour")
	if err != nil {
		return civil.DateTime{}, err
	}
	if err := p.literal(':'); err != nil {
		return civil.DateTime{}, err
	}
	minute, minuteAt, err := p.digits(2, 2, "two-digit minute")
	if err != nil {
		return civil.DateTime{}, err
	}
	pm, err := p.meridiem()
	if err != nil {
		return civil.DateTime{}, err
	}
	if p.pos != len(s) {
		return civil.DateTime{}, p.fail(p.pos, "unparsed text after meridiem")
	}

	if day < 1 || day > 31 {
		return civil.DateTime{}, p.fail(dayAt, "day of month out of range")
	}
	date := civil.Date{Year: year, Month: month, Day: day}
	if !date.IsValid() {
		return civil.DateTime{}, p.fail(monthAt, "day "+strconv.Itoa(day)+" does not exist in "+month.String()+" "+strconv.Itoa(year))
	}
	if hour < 1 || hour > 12 {
		return civil.DateTime{}, p.fail(hourAt, "hour out of range (1-12)")
	}
	if minute > 59 {
		return civil.DateTime{}, p.fail(minuteAt, "minute out of range")
	}
	hour %= 12
	if pm {
		hour += 12
	}
	return civil.DateTime{Date: date, Time: civil.Time{Hour: hour, Minute: minute}}, nil
}
