package timezone

import "time"

const DefaultTimezone = "Asia/Jakarta"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	// sem tzdata no host
	return time.FixedZone("WIB", 7*60*60)
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Clock devolve um relógio preso ao fuso do estúdio.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Today formata a data local (YYYY-MM-DD) de now.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}
