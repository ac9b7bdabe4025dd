package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader matches the column set of the exported recommendations file.
var csvHeader = []string{
	"Skin_Tone_Name",
	"Skin_Tone_Level",
	"Undertone_Type",
	"Upper_Wear_Colors",
	"Example_Outfit_Ideas",
}

// WriteCSV writes the dataset as delimited text, one record per row plus a
// header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing dataset header: %v", err)
	}

	for _, row := range rows {
		record := []string{
			row.SkinToneName,
			strconv.Itoa(row.SkinToneLevel),
			row.UndertoneType,
			row.UpperWearColors,
			row.ExampleOutfitIdeas,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing dataset row for %s/%s: %v", row.SkinToneName, row.UndertoneType, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
