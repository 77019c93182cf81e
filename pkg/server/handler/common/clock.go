/*
Copyright 2026 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package common

import (
	"time"
)

//go:generate mockgen -source=clock.go -destination=mock/clock.go -package=mock

// Clock abstracts time so generated timestamps can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock is a wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// TimestampLayout matches the millisecond precision UTC timestamps the
// real service generates.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats a time the way the service does.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
