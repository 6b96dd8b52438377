package domain

// Slot is a quantized point of the day axis: minute is one of 0, 15, 30, 45 and hour is in [0,23]
type Slot struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns hour*60+minute
func (s Slot) MinuteOfDay() int {
	return s.Hour*MinutesPerHour + s.Minute
}

// IsValid returns true if the slot is aligned to the slot step and fits into one day
func (s Slot) IsValid() bool {
	return s.Hour >= 0 && s.Hour < HoursPerDay &&
		s.Minute >= 0 && s.Minute < MinutesPerHour &&
		s.Minute%SlotStepMinutes == 0
}
