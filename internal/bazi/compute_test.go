package bazi

import "testing"

func TestComputeValidSolarInput(t *testing.T) {
	in := Input{
		DateType:  Solar,
		Year:      2000,
		Month:     1,
		Day:       1,
		Hour:      12,
		Minute:    0,
		TimeType:  StandardTime,
		Gender:    Male,
		Longitude: 120,
	}
	result, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute returned error for valid input: %v", err)
	}
	if !result.Pillars.Year.Valid() || !result.Pillars.Month.Valid() ||
		!result.Pillars.Day.Valid() || !result.Pillars.Hour.Valid() {
		t.Error("one or more pillars violate the sexagenary stem/branch parity constraint")
	}
	if len(result.Annotations) != 4 {
		t.Errorf("expected 4 pillar annotations, got %d", len(result.Annotations))
	}
	if result.Annotations[2].TenGod != nil {
		t.Error("day position ten-god annotation should be nil (no ten-god relative to itself)")
	}
	if len(result.TenYearLuck) != 9 {
		t.Errorf("expected 9 ten-year luck steps, got %d", len(result.TenYearLuck))
	}
	if len(result.AnnualLuck) != 10 {
		t.Errorf("expected 10 annual luck steps, got %d", len(result.AnnualLuck))
	}
}

func TestComputeLunarInput(t *testing.T) {
	in := Input{
		DateType:  LunarCalendar,
		Year:      2023,
		Month:     1,
		Day:       1,
		Hour:      8,
		Minute:    30,
		TimeType:  StandardTime,
		Gender:    Female,
		Longitude: 116.4,
	}
	result, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute returned error for valid lunar input: %v", err)
	}
	if result.LunarDate.Year != 2023 {
		t.Errorf("round-tripped lunar year = %d, want 2023", result.LunarDate.Year)
	}
}

func TestComputeTrueSolarTimeInputRunsWithoutReReduction(t *testing.T) {
	standard := Input{
		DateType: Solar, Year: 2024, Month: 3, Day: 5,
		Hour: 10, Minute: 24, TimeType: StandardTime, Gender: Male, Longitude: 116.4,
	}
	trueSolar := standard
	trueSolar.TimeType = TrueSolarTime

	if _, err := Compute(standard); err != nil {
		t.Fatal(err)
	}
	if _, err := Compute(trueSolar); err != nil {
		t.Fatal(err)
	}
}

func TestComputeRejectsOutOfRangeYear(t *testing.T) {
	in := Input{DateType: Solar, Year: 1800, Month: 1, Day: 1, Hour: 0, Minute: 0, Longitude: 120}
	_, err := Compute(in)
	if err == nil {
		t.Fatal("expected an error for a civil year outside [1900, 2100]")
	}
	baziErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if baziErr.Kind != OutOfRange {
		t.Errorf("error kind = %v, want OutOfRange", baziErr.Kind)
	}
}

func TestComputeRejectsInvalidCalendarDate(t *testing.T) {
	in := Input{DateType: Solar, Year: 2024, Month: 2, Day: 30, Hour: 0, Minute: 0, Longitude: 120}
	_, err := Compute(in)
	if err == nil {
		t.Fatal("expected an error for February 30th")
	}
	baziErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if baziErr.Kind != InvalidInput {
		t.Errorf("error kind = %v, want InvalidInput", baziErr.Kind)
	}
}

func TestComputeRejectsOutOfRangeLongitude(t *testing.T) {
	in := Input{DateType: Solar, Year: 2000, Month: 1, Day: 1, Hour: 0, Minute: 0, Longitude: 200}
	_, err := Compute(in)
	if err == nil {
		t.Fatal("expected an error for longitude outside [-180, 180]")
	}
}

func TestComputeLuckDirectionMatchesYearStemPolarityAndGender(t *testing.T) {
	in := Input{DateType: Solar, Year: 1984, Month: 2, Day: 4, Hour: 23, Minute: 19, Gender: Male, Longitude: 120}
	result, err := Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	yang := result.Pillars.Year.Stem.Polarity().String() == "Yang"
	if result.LuckDirection != yang {
		t.Errorf("luck direction = %v for yang-stem year %v with male gender, want forward", result.LuckDirection, yang)
	}
}
