package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/numberline/phonenum/phonenum"
)

// Minimal CLI over the library. Usage:
//   phonenum parse -region US "(650) 253-0000"
//   phonenum format -region NZ -fmt national "033316005"
//   phonenum match "+64 3 331 6005" "03 331 6005"
//   phonenum regions
//   phonenum dump-metadata > metadata.bin

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]
	switch cmd {
	case "parse":
		parse()
	case "format":
		format()
	case "match":
		match()
	case "regions":
		regions()
	case "dump-metadata":
		dumpMetadata()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "phonenum commands: parse | format | match | regions | dump-metadata\n")
}

// resolveRegion validates a -region value, suggesting the nearest known
// code on a typo.
func resolveRegion(region string) string {
	if region == "" {
		return "ZZ"
	}
	region = strings.ToUpper(region)
	r := phonenum.DefaultRegistry()
	if region == "ZZ" || r.MetadataForRegion(region) != nil {
		return region
	}
	if hint := r.ClosestRegion(region); hint != "" {
		fmt.Fprintf(os.Stderr, "unknown region %q (did you mean %q?)\n", region, hint)
	} else {
		fmt.Fprintf(os.Stderr, "unknown region %q\n", region)
	}
	os.Exit(2)
	return ""
}

type numberJSON struct {
	CountryCode     int    `json:"country_code"`
	NationalNumber  uint64 `json:"national_number"`
	Extension       string `json:"extension,omitempty"`
	RawInput        string `json:"raw_input,omitempty"`
	Region          string `json:"region,omitempty"`
	Type            string `json:"type"`
	Valid           bool   `json:"valid"`
	PossibleReason  string `json:"possible_reason"`
	E164            string `json:"e164"`
	International   string `json:"international"`
	National        string `json:"national"`
	RFC3966         string `json:"rfc3966"`
	CountryCodeFrom string `json:"country_code_source,omitempty"`
}

func describe(r *phonenum.Registry, num *phonenum.PhoneNumber) numberJSON {
	out := numberJSON{
		CountryCode:    num.CountryCode,
		NationalNumber: num.NationalNumber,
		Extension:      num.GetExtension(),
		RawInput:       num.GetRawInput(),
		Region:         r.GetRegionCodeForNumber(num),
		Type:           r.GetNumberType(num).String(),
		Valid:          r.IsValidNumber(num),
		PossibleReason: r.IsPossibleNumberWithReason(num).String(),
		E164:           r.Format(num, phonenum.FormatE164),
		International:  r.Format(num, phonenum.FormatInternational),
		National:       r.Format(num, phonenum.FormatNational),
		RFC3966:        r.Format(num, phonenum.FormatRFC3966),
	}
	if num.GetRawInput() != "" {
		out.CountryCodeFrom = num.CountryCodeSource.String()
	}
	return out
}

func parse() {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	region := fs.String("region", "", "default region for numbers without a country code")
	raw := fs.Bool("raw", false, "keep the raw input and country code source")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: phonenum parse [-region XX] [-raw] <number>\n")
		os.Exit(2)
	}
	r := phonenum.DefaultRegistry()
	regionCode := resolveRegion(*region)
	var num *phonenum.PhoneNumber
	var err error
	if *raw {
		num, err = r.ParseAndKeepRawInput(fs.Arg(0), regionCode)
	} else {
		num, err = r.Parse(fs.Arg(0), regionCode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(describe(r, num))
}

func format() {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	region := fs.String("region", "", "default region for numbers without a country code")
	fmtName := fs.String("fmt", "e164", "output format: e164 | intl | national | rfc3966")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: phonenum format [-region XX] [-fmt name] <number>\n")
		os.Exit(2)
	}
	var outFmt phonenum.PhoneNumberFormat
	switch *fmtName {
	case "e164":
		outFmt = phonenum.FormatE164
	case "intl", "international":
		outFmt = phonenum.FormatInternational
	case "national":
		outFmt = phonenum.FormatNational
	case "rfc3966":
		outFmt = phonenum.FormatRFC3966
	default:
		fmt.Fprintf(os.Stderr, "unknown format: %s\n", *fmtName)
		os.Exit(2)
	}
	r := phonenum.DefaultRegistry()
	num, err := r.Parse(fs.Arg(0), resolveRegion(*region))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(r.Format(num, outFmt))
}

func match() {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: phonenum match <first> <second>\n")
		os.Exit(2)
	}
	result := phonenum.IsNumberMatch(fs.Arg(0), fs.Arg(1))
	fmt.Println(result)
	if result == phonenum.MatchInvalidNumber || result == phonenum.MatchNone {
		os.Exit(1)
	}
}

func regions() {
	r := phonenum.DefaultRegistry()
	out := map[string]any{
		"regions":       r.SupportedRegions(),
		"calling_codes": r.SupportedCallingCodes(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func dumpMetadata() {
	r := phonenum.DefaultRegistry()
	if err := r.WriteMetadataMsgpack(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "dump-metadata: %v\n", err)
		os.Exit(1)
	}
}
