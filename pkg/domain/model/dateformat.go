package model

import (
	"fmt"

	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate formats a date in long Spanish form, e.g. "1 de enero de 2023".
// Unparsable input is returned as is.
func LongDate(d types.Date) string {
	t, err := d.Time()
	if err != nil {
		return d.String()
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
