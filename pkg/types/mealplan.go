// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the parser, renderer,
// exporter, and archive.
package types

// Day is one of the seven weekday names used as a row key. The zero value
// is Monday; iteration over Days() yields canonical week order.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	numDays = 7
)

var dayNames = [numDays]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Days returns all seven days in canonical week order.
func Days() []Day {
	days := make([]Day, numDays)
	for i := range days {
		days[i] = Day(i)
	}
	return days
}

// String returns the literal day name.
func (d Day) String() string {
	if d < 0 || int(d) >= numDays {
		return "Day(?)"
	}
	return dayNames[d]
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= 0 && int(d) < numDays
}

// ParseDay returns the Day whose literal name equals s exactly.
func ParseDay(s string) (Day, bool) {
	for i, name := range dayNames {
		if s == name {
			return Day(i), true
		}
	}
	return 0, false
}

// MealSlot is one of the six meal categories used as a column key.
type MealSlot int

const (
	Breakfast MealSlot = iota
	MidMorningSnack
	Lunch
	AfternoonSnack
	Dinner
	Evening

	// NumSlots is the number of meal slots per day.
	NumSlots = 6
)

var slotLabels = [NumSlots]string{
	"Breakfast", "Mid-Morning Snack", "Lunch", "Afternoon Snack", "Dinner", "Evening",
}

// Slots returns the six meal slots in column order.
func Slots() []MealSlot {
	slots := make([]MealSlot, NumSlots)
	for i := range slots {
		slots[i] = MealSlot(i)
	}
	return slots
}

// String returns the slot label, e.g. "Mid-Morning Snack".
func (s MealSlot) String() string {
	if s < 0 || int(s) >= NumSlots {
		return "MealSlot(?)"
	}
	return slotLabels[s]
}

// Meals holds the text for each slot of one day. Unset slots are empty.
type Meals [NumSlots]string

// MealPlan maps each day seen in the input to its meals.
type MealPlan map[Day]Meals

// Days returns the days present in the plan, in canonical week order.
func (p MealPlan) Days() []Day {
	var days []Day
	for _, d := range Days() {
		if _, ok := p[d]; ok {
			days = append(days, d)
		}
	}
	return days
}
