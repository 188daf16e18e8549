// Copyright 2025 Edgewire, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"math"
	"time"
)

const (
	microsPerDay = 86_400 * 1_000_000

	// Seconds from the Unix epoch to 2000-01-01T00:00:00Z, the epoch all
	// datetime and date scalars are relative to.
	epochUnixSeconds = 10_957 * 86_400
)

// Duration is a span of time counted in microseconds. The wire format
// reserves day and month components; they must be zero, so the model
// carries microseconds only.
type Duration struct {
	micros int64
}

func DurationFromMicros(micros int64) Duration {
	return Duration{micros: micros}
}

func (d Duration) Micros() int64 {
	return d.micros
}

func (d Duration) IsNegative() bool {
	return d.micros < 0
}

// AbsMicros returns the magnitude of the duration in microseconds.
func (d Duration) AbsMicros() uint64 {
	if d.micros < 0 {
		return uint64(math.MaxUint64) - uint64(d.micros) + 1
	}
	return uint64(d.micros)
}

// AbsDuration returns the magnitude as a time.Duration, saturating at the
// maximum representable nanosecond count.
func (d Duration) AbsDuration() time.Duration {
	abs := d.AbsMicros()
	if abs > math.MaxInt64/1000 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(abs) * time.Microsecond
}

// Datetime is a UTC point in time counted in microseconds relative to
// 2000-01-01T00:00:00Z.
type Datetime struct {
	micros int64
}

func DatetimeFromMicros(micros int64) Datetime {
	return Datetime{micros: micros}
}

func (d Datetime) Micros() int64 {
	return d.micros
}

// Time converts to a time.Time in UTC.
func (d Datetime) Time() time.Time {
	sec := d.micros / 1_000_000
	rem := d.micros % 1_000_000
	if rem < 0 {
		sec--
		rem += 1_000_000
	}
	return time.Unix(epochUnixSeconds+sec, rem*1000).UTC()
}

// DatetimeFromTime converts a time.Time, failing with ErrOutOfRange when
// the microsecond count does not fit the wire range.
func DatetimeFromTime(t time.Time) (Datetime, error) {
	sec := t.Unix() - epochUnixSeconds
	if sec > math.MaxInt64/1_000_000-1 || sec < math.MinInt64/1_000_000+1 {
		return Datetime{}, ErrOutOfRange
	}
	micros := sec*1_000_000 + int64(t.Nanosecond())/1000
	return Datetime{micros: micros}, nil
}

// LocalDatetime is a calendar timestamp without a timezone, counted in
// microseconds relative to 2000-01-01T00:00:00.
type LocalDatetime struct {
	micros int64
}

func LocalDatetimeFromMicros(micros int64) LocalDatetime {
	return LocalDatetime{micros: micros}
}

func (d LocalDatetime) Micros() int64 {
	return d.micros
}

// Date returns the calendar-date part.
func (d LocalDatetime) Date() LocalDate {
	days := d.micros / microsPerDay
	if d.micros%microsPerDay < 0 {
		days--
	}
	return LocalDate{days: int32(days)}
}

// Time returns the time-of-day part.
func (d LocalDatetime) Time() LocalTime {
	micros := d.micros % microsPerDay
	if micros < 0 {
		micros += microsPerDay
	}
	return LocalTime{micros: micros}
}

// LocalDate is a calendar date counted in days relative to 2000-01-01.
type LocalDate struct {
	days int32
}

func LocalDateFromDays(days int32) LocalDate {
	return LocalDate{days: days}
}

func (d LocalDate) Days() int32 {
	return d.days
}

// LocalTime is a time of day counted in microseconds since midnight,
// always within [0, 24h).
type LocalTime struct {
	micros int64
}

// LocalTimeFromMicros validates the microsecond count against the length
// of a day.
func LocalTimeFromMicros(micros int64) (LocalTime, error) {
	if micros < 0 || micros >= microsPerDay {
		return LocalTime{}, ErrOutOfRange
	}
	return LocalTime{micros: micros}, nil
}

func (t LocalTime) Micros() int64 {
	return t.micros
}

var (
	Midnight     = LocalTime{micros: 0}
	MaxLocalTime = LocalTime{micros: microsPerDay - 1}
)
