/*
 * csvread.go, part of goShower.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package shower

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

//FindEvent returns the path of the CSV file for the given event number
//in folder. The files are expected to be named event_NNNN.csv.
//It returns an error if the file doesn't exist.
func FindEvent(folder string, event int) (string, error) {
	name := filepath.Join(folder, fmt.Sprintf("event_%04d.csv", event))
	info, err := os.Stat(name)
	if err != nil {
		return "", SError{message: NoEventFile, filename: name, deco: []string{"FindEvent"}, critical: true, err: err}
	}
	if info.IsDir() {
		return "", SError{message: NoEventFile + ": is a directory", filename: name, deco: []string{"FindEvent"}, critical: true}
	}
	return name, nil
}

//LoadTracks reads the tracks from the CSV file csvname, translating them by origin.
//If o is nil, the default options are used. The only errors returned are those that
//prevent reading the file as a whole. Rows that can't be used are just dropped, and
//their fate recorded in the Report of the returned Dataset.
func LoadTracks(csvname string, origin r3.Vec, o *Options) (*Dataset, error) {
	f, err := os.Open(csvname)
	if err != nil {
		return nil, SError{message: UnableToOpen, filename: csvname, deco: []string{"LoadTracks"}, critical: true, err: err}
	}
	defer f.Close()
	D, err := ReadTracks(f, origin, o)
	if err != nil {
		if e, ok := err.(SError); ok {
			e.filename = csvname
			err = e
		}
		return nil, errDecorate(err, "LoadTracks")
	}
	D.Source = csvname
	return D, nil
}

//ReadTracks reads the tracks in CSV format from r. See LoadTracks.
//An input with no header produces an empty Dataset, not an error.
func ReadTracks(r io.Reader, origin r3.Vec, o *Options) (*Dataset, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if err := o.Columns.check(); err != nil {
		return nil, errDecorate(err, "ReadTracks")
	}
	D := &Dataset{Origin: origin, Report: new(Report)}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 //rows with missing or extra fields are dealt with later.
	reader.LazyQuotes = true
	header, err := reader.Read()
	if err == io.EOF {
		D.colorize()
		return D, nil
	}
	if err != nil {
		return nil, SError{message: BadHeader, deco: []string{"ReadTracks"}, critical: true, err: err}
	}
	cols := columnIndexes(header, o.Columns)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			D.Report.add(RowResult{Line: perr.StartLine, Status: RowSyntax, Err: err})
			continue
		}
		if err != nil {
			return nil, SError{message: ReadFailure, deco: []string{"ReadTracks"}, critical: true, err: err}
		}
		line, _ := reader.FieldPos(0)
		t, res := o.track(record, cols, origin)
		res.Line = line
		t.Line = line
		D.Report.add(res)
		if res.Status == RowKept {
			D.Tracks = append(D.Tracks, t)
		}
	}
	D.colorize()
	return D, nil
}

//columnIndexes returns, for each wanted column, its index in the header,
//or -1 if it is not present.
func columnIndexes(header []string, wanted Columns) [8]int {
	var ret [8]int
	for i, w := range wanted {
		ret[i] = -1
		for j, h := range header {
			h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
			if h == w {
				ret[i] = j
				break
			}
		}
	}
	return ret
}

//track builds a Track from a CSV record. The returned RowResult
//tells whether the track should be kept.
func (O *Options) track(record []string, cols [8]int, origin r3.Vec) (Track, RowResult) {
	var vals [8]float64
	for i, c := range cols {
		if c < 0 || c >= len(record) {
			return Track{}, RowResult{Status: RowMissingColumn, Err: fmt.Errorf("column %s not present", O.Columns[i])}
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(record[c]), 64)
		if err != nil {
			return Track{}, RowResult{Status: RowBadNumber, Err: fmt.Errorf("column %s: %w", O.Columns[i], err)}
		}
		//ParseFloat takes "NaN" and "Inf" as numbers.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Track{}, RowResult{Status: RowBadNumber, Err: fmt.Errorf("column %s: %s is not a finite number", O.Columns[i], record[c])}
		}
		vals[i] = f
	}
	start := r3.Add(r3.Scale(O.Scale, r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}), origin)
	endOrig := r3.Add(r3.Scale(O.Scale, r3.Vec{X: vals[3], Y: vals[4], Z: vals[5]}), origin)
	direction := r3.Sub(endOrig, start)
	//written so that a NaN from an overflow fails both tests.
	if !(r3.Norm(direction) > O.MinLength) {
		return Track{}, RowResult{Status: RowTooShort}
	}
	if !(direction.Z <= 0) {
		return Track{}, RowResult{Status: RowUpward}
	}
	t := Track{
		Start:  start,
		End:    r3.Add(start, r3.Scale(O.TrackLengthScale, direction)),
		TStart: vals[6],
		TEnd:   vals[7],
		TAvg:   vals[6]/2.0 + vals[7]/2.0, //can't overflow
	}
	return t, RowResult{Status: RowKept}
}
