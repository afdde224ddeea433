package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offersleuth/internal/utils"
)

const bannerText = `
 ██████╗ ███████╗███████╗███████╗██████╗ ███████╗██╗     ███████╗██╗   ██╗████████╗██╗  ██╗
██╔═══██╗██╔════╝██╔════╝██╔════╝██╔══██╗██╔════╝██║     ██╔════╝██║   ██║╚══██╔══╝██║  ██║
██║   ██║█████╗  █████╗  █████╗  ██████╔╝███████╗██║     █████╗  ██║   ██║   ██║   ███████║
██║   ██║██╔══╝  ██╔══╝  ██╔══╝  ██╔══██╗╚════██║██║     ██╔══╝  ██║   ██║   ██║   ██╔══██║
╚██████╔╝██║     ██║     ███████╗██║  ██║███████║███████╗███████╗╚██████╔╝   ██║   ██║  ██║
 ╚═════╝ ╚═╝     ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝
`

// ColorizeText applies a random colour fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")
	half := len(strs) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, s := range strs {
		b.WriteString(startColor.Fade(0, float32(len(strs)), float32(i%half), firstPoint).Sprint(s))
	}
	return b.String()
}

// PrintBanner writes the application banner to w
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// Salary bands for ColorizeSalary, in the offers' monthly currency units
const (
	highSalary = 25000
	midSalary  = 15000
	lowSalary  = 8000
)

// ColorizeSalary formats a salary figure and colours it by band
func ColorizeSalary(v float64) string {
	formatted := utils.FormatSalary(v)

	switch {
	case v >= highSalary:
		return pterm.Green(formatted)
	case v >= midSalary:
		return pterm.LightGreen(formatted)
	case v >= lowSalary:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
