package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/corehuman/bazi-engine/internal/bazi"
)

const version = "1.0.0"

func main() {
	var (
		dateType      = flag.String("date-type", "solar", "calendar of --year/--month/--day: \"solar\" or \"lunar\"")
		year          = flag.Int("year", 0, "civil or lunar year")
		month         = flag.Int("month", 0, "civil or lunar month (1-12)")
		day           = flag.Int("day", 0, "civil or lunar day")
		isLeapMonth   = flag.Bool("leap-month", false, "the lunar month above is a leap month")
		hour          = flag.Int("hour", 0, "hour of day (0-23)")
		minute        = flag.Int("minute", 0, "minute of hour (0-59)")
		timeType      = flag.String("time-type", "standard", "\"standard\" (civil clock) or \"truesolar\" (already reduced)")
		gender        = flag.String("gender", "male", "\"male\" or \"female\", used for luck direction")
		longitude     = flag.Float64("longitude", 120, "east-positive birthplace longitude in degrees")
		dstConfirmed  = flag.Bool("dst-confirmed", false, "the input time already accounts for 1986-1991 China DST")
		earlyRatSplit = flag.Bool("early-rat-split", false, "treat 23:00-23:59 as belonging to the next day's pillar")
		pretty        = flag.Bool("pretty", false, "pretty-print the JSON output")
		showVer       = flag.Bool("version", false, "print version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compute a Four Pillars (BaZi) chart and print it as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s --year 1984 --month 2 --day 4 --hour 23 --minute 19 --longitude 120\n", os.Args[0])
	}

	flag.Parse()

	if *showVer {
		fmt.Printf("bazicli version %s\n", version)
		os.Exit(0)
	}

	input, err := buildInput(*dateType, *year, *month, *day, *isLeapMonth, *hour, *minute,
		*timeType, *gender, *longitude, *dstConfirmed, *earlyRatSplit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	result, err := bazi.Compute(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing chart: %v\n", err)
		os.Exit(1)
	}

	view := toCLIView(result)
	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(view, "", "  ")
	} else {
		out, err = json.Marshal(view)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}

func buildInput(dateType string, year, month, day int, isLeapMonth bool, hour, minute int,
	timeType, gender string, longitude float64, dstConfirmed, earlyRatSplit bool) (bazi.Input, error) {

	in := bazi.Input{
		Year: year, Month: month, Day: day, IsLeapMonth: isLeapMonth,
		Hour: hour, Minute: minute, Longitude: longitude,
		DSTConfirmed: dstConfirmed, EarlyRatSplit: earlyRatSplit,
	}

	switch strings.ToLower(dateType) {
	case "solar":
		in.DateType = bazi.Solar
	case "lunar":
		in.DateType = bazi.LunarCalendar
	default:
		return bazi.Input{}, fmt.Errorf("unknown --date-type %q, want \"solar\" or \"lunar\"", dateType)
	}

	switch strings.ToLower(timeType) {
	case "standard":
		in.TimeType = bazi.StandardTime
	case "truesolar":
		in.TimeType = bazi.TrueSolarTime
	default:
		return bazi.Input{}, fmt.Errorf("unknown --time-type %q, want \"standard\" or \"truesolar\"", timeType)
	}

	switch strings.ToLower(gender) {
	case "male", "m":
		in.Gender = bazi.Male
	case "female", "f":
		in.Gender = bazi.Female
	default:
		return bazi.Input{}, fmt.Errorf("unknown --gender %q, want \"male\" or \"female\"", gender)
	}

	return in, nil
}
