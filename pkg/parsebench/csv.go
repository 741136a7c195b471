package parsebench

import (
	"bytes"
	"fmt"
)

// csvBytesPerRecord is the approximate serialized size of one 20-column
// record, used to size generated payloads.
const csvBytesPerRecord = 250

// CSVRecord mirrors one row of the synthetic 20-column dataset.
type CSVRecord struct {
	ID          int
	Name        string
	Value1      float64
	Value2      float64
	Value3      float64
	Category    int
	Status      string
	Price       float64
	Quantity    int
	Date        string
	Score1      float64
	Score2      float64
	Score3      float64
	Priority    int
	Description string
	Weight      float64
	Count       int
	Type        string
	Ratio       float64
	Flag        int
}

const csvHeader = "id,name,value1,value2,value3,category,status,price,quantity,date,score1,score2,score3,priority,description,weight,count,type,ratio,flag\n"

// GenerateCSV produces roughly sizeMB megabytes of synthetic CSV data. The
// content is a pure function of the target size.
func GenerateCSV(sizeMB int) ([]byte, error) {
	if sizeMB <= 0 {
		return nil, ErrInvalidSize
	}

	records := sizeMB * 1024 * 1024 / csvBytesPerRecord

	var buf bytes.Buffer
	buf.Grow(sizeMB*1024*1024 + 1024)
	buf.WriteString(csvHeader)

	for i := 0; i < records; i++ {
		status := "inactive"
		if i%2 == 0 {
			status = "active"
		}

		recordType := "typeC"
		switch i % 3 {
		case 0:
			recordType = "typeA"
		case 1:
			recordType = "typeB"
		}

		fmt.Fprintf(&buf,
			"%d,Record_%d,%.3f,%.3f,%.3f,%d,%s,%.2f,%d,2024-%02d-%02d,%.3f,%.3f,%.3f,%d,Description_%d,%.3f,%d,%s,%.4f,%d\n",
			i+1,
			i+1,
			float64(i+1)*1.5,
			float64(i+1)*2.3,
			float64(i+1)*0.7,
			(i%5)+1,
			status,
			float64(i+1)*12.99,
			(i%100)+1,
			(i%12)+1,
			(i%28)+1,
			float64(i+1)*0.85,
			float64(i+1)*1.15,
			float64(i+1)*0.95,
			(i%3)+1,
			i+1,
			float64(i+1)*2.5,
			(i%50)+1,
			recordType,
			float64(i+1)*0.123,
			i%2,
		)
	}

	return buf.Bytes(), nil
}

// ParseCSV scans the data byte by byte with a hand-rolled field splitter.
// This is the measured workload, so it intentionally avoids encoding/csv:
// quotes toggle field grouping, commas and line endings delimit, the header
// line is skipped, and only complete 20-field rows with a positive id are
// kept.
func ParseCSV(data []byte) []CSVRecord {
	var records []CSVRecord

	var current CSVRecord
	var field []byte
	fieldIndex := 0
	inQuotes := false
	skipHeader := true

	flushField := func() {
		if !skipHeader && fieldIndex < 20 {
			setCSVField(&current, fieldIndex, field)
		}
		field = field[:0]
		fieldIndex++
	}

	for i := 0; i < len(data); i++ {
		c := data[i]

		if c == '"' {
			inQuotes = !inQuotes
			continue
		}

		if (c == ',' && !inQuotes) || c == '\n' || c == '\r' {
			flushField()

			if c == '\n' || c == '\r' {
				if skipHeader {
					skipHeader = false
				} else if fieldIndex >= 20 && current.ID > 0 {
					records = append(records, current)
					current = CSVRecord{}
				}
				fieldIndex = 0

				if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
					i++
				}
			}
			continue
		}

		field = append(field, c)
	}

	// Input may not end with a newline
	if !skipHeader && fieldIndex >= 20 && current.ID > 0 {
		setCSVField(&current, fieldIndex, field)
		records = append(records, current)
	}

	return records
}

func setCSVField(record *CSVRecord, index int, field []byte) {
	switch index {
	case 0:
		record.ID = parseInt(field)
	case 1:
		record.Name = string(field)
	case 2:
		record.Value1 = parseFloat(field)
	case 3:
		record.Value2 = parseFloat(field)
	case 4:
		record.Value3 = parseFloat(field)
	case 5:
		record.Category = parseInt(field)
	case 6:
		record.Status = string(field)
	case 7:
		record.Price = parseFloat(field)
	case 8:
		record.Quantity = parseInt(field)
	case 9:
		record.Date = string(field)
	case 10:
		record.Score1 = parseFloat(field)
	case 11:
		record.Score2 = parseFloat(field)
	case 12:
		record.Score3 = parseFloat(field)
	case 13:
		record.Priority = parseInt(field)
	case 14:
		record.Description = string(field)
	case 15:
		record.Weight = parseFloat(field)
	case 16:
		record.Count = parseInt(field)
	case 17:
		record.Type = string(field)
	case 18:
		record.Ratio = parseFloat(field)
	case 19:
		record.Flag = parseInt(field)
	}
}
