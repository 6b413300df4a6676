package contract

import (
	"encoding/json"
	"strconv"
	"strings"

	"bingopot/sdk"
)

// ---------- Guards ----------

// ensure aborts the transaction with msg when cond does not hold. Named
// to stay clear of the testify require import in this package's tests.
func ensure(chain sdk.Chain, cond bool, msg string) {
	if !cond {
		chain.Abort(msg)
	}
}

// ---------- JSON Conversions ----------

func ToJSON[T any](chain sdk.Chain, v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func parseU64(chain sdk.Chain, s string) uint64 {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		chain.Abort("failed to parse '" + s + "' to uint64")
	}
	return val
}

// ---------- Env Helpers ----------

func senderAddress(chain sdk.Chain) string {
	ptr := chain.GetEnvKey(sdk.EnvSender)
	ensure(chain, ptr != nil && *ptr != "", "sender missing")
	return *ptr
}

// blockTime returns the current block timestamp in unix seconds.
func blockTime(chain sdk.Chain) uint64 {
	ptr := chain.GetEnvKey(sdk.EnvBlockTime)
	ensure(chain, ptr != nil && len(*ptr) >= 19, "block timestamp missing")
	return parseISO8601ToUnix(*ptr)
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendU8(dst []byte, v uint8) []byte { return appendU64(dst, uint64(v)) }

// parseFixedPoint3 parses a decimal string with up to 3 fractional digits
// and returns an integer scaled by 1000 (e.g. "1.23" -> 1230).
// No allocations, no floats.
func parseFixedPoint3(chain sdk.Chain, s string) uint64 {
	n := len(s)
	if n == 0 {
		return 0
	}

	var intPart uint64
	var fracPart uint64
	var fracDigits int
	dotSeen := false

	for i := 0; i < n; i++ {
		c := s[i]

		if c == '.' {
			ensure(chain, !dotSeen, "invalid number: multiple dots")
			dotSeen = true
			continue
		}

		ensure(chain, c >= '0' && c <= '9', "invalid character in number")
		d := uint64(c - '0')

		if !dotSeen {
			intPart = intPart*10 + d
		} else {
			ensure(chain, fracDigits < 3, "too many fractional digits")
			fracDigits++
			fracPart = fracPart*10 + d
		}
	}

	switch fracDigits {
	case 1:
		fracPart *= 100
	case 2:
		fracPart *= 10
	}

	return intPart*1000 + fracPart
}

// appendFixedPoint3 renders a value scaled by 1000 back to its decimal
// form with exactly 3 fractional digits (e.g. 1230 -> "1.230").
func appendFixedPoint3(dst []byte, v uint64) []byte {
	dst = appendU64(dst, v/1000)
	dst = append(dst, '.')
	frac := v % 1000
	dst = append(dst, byte('0'+frac/100), byte('0'+(frac/10)%10), byte('0'+frac%10))
	return dst
}

// ---------- Time Helpers ----------

// parseISO8601ToUnix parses "YYYY-MM-DDThh:mm:ss" UTC format into UNIX
// seconds. Assumes valid ASCII digits.
func parseISO8601ToUnix(s string) uint64 {
	year := strToUint16Fast(s[0:4])
	month := strToUint8Fast(s[5:7])
	day := strToUint8Fast(s[8:10])
	hour := strToUint8Fast(s[11:13])
	minute := strToUint8Fast(s[14:16])
	second := strToUint8Fast(s[17:19])

	days := daysSinceUnixEpoch(year, month, day)
	return days*86400 + uint64(hour)*3600 + uint64(minute)*60 + uint64(second)
}

func strToUint16Fast(s string) uint16 {
	var n uint16
	for i := 0; i < len(s); i++ {
		n = n*10 + uint16(s[i]-'0')
	}
	return n
}

func strToUint8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

func isLeapYear(year uint16) bool {
	y := int(year)
	return (y%4 == 0 && y%100 != 0) || (y%400 == 0)
}

func daysSinceUnixEpoch(year uint16, month uint8, day uint8) uint64 {
	y := int(year) - 1970
	days := uint64(y * 365)
	// Leap days from years strictly before the current one; the current
	// year's Feb 29 is added by the month loop once it has passed.
	days += uint64((y+1)/4 - (y+69)/100 + (y+369)/400)

	var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i := uint8(1); i < month; i++ {
		days += uint64(monthDays[i-1])
		if i == 2 && isLeapYear(year) {
			days++
		}
	}

	return days + uint64(day-1)
}
