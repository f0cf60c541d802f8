/*
 * report.go, part of goShower.
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
	"fmt"
	"strings"
)

//RowStatus tells what happened to a row of the input file.
type RowStatus int

const (
	RowKept          RowStatus = iota //The row gave a track that is part of the Dataset.
	RowMissingColumn                  //A required column is absent from the header or from the row.
	RowBadNumber                      //A required field is not a number.
	RowSyntax                         //The row is not well-formed CSV.
	RowTooShort                       //The track is too short.
	RowUpward                         //The track goes up.
)

var rowStatusNames = map[RowStatus]string{
	RowKept:          "kept",
	RowMissingColumn: "missing column",
	RowBadNumber:     "bad number",
	RowSyntax:        "syntax",
	RowTooShort:      "too short",
	RowUpward:        "upward",
}

func (s RowStatus) String() string {
	if n, ok := rowStatusNames[s]; ok {
		return n
	}
	return "unknown"
}

//Parsed returns true if the status corresponds to a row
//where all the required fields could be read.
func (s RowStatus) Parsed() bool {
	return s == RowKept || s == RowTooShort || s == RowUpward
}

//RowResult is the outcome of reading one row of the input.
type RowResult struct {
	Line   int //Line in the file where the row starts (the header is line 1)
	Status RowStatus
	Err    error //The parsing error, for the rows that couldn't be parsed, nil otherwise.
}

//Report collects the results for all the rows read from a file.
type Report struct {
	Results []RowResult

	Rows          int
	Parsed        int
	Kept          int
	MissingColumn int
	BadNumber     int
	Syntax        int
	TooShort      int
	Upward        int
}

//add records the result for a row.
func (R *Report) add(res RowResult) {
	R.Results = append(R.Results, res)
	R.Rows++
	if res.Status.Parsed() {
		R.Parsed++
	}
	switch res.Status {
	case RowKept:
		R.Kept++
	case RowMissingColumn:
		R.MissingColumn++
	case RowBadNumber:
		R.BadNumber++
	case RowSyntax:
		R.Syntax++
	case RowTooShort:
		R.TooShort++
	case RowUpward:
		R.Upward++
	}
}

//Dropped returns the number of rows that didn't give a track.
func (R *Report) Dropped() int {
	return R.Rows - R.Kept
}

//NoneParsed returns true if not a single row could be parsed
//(including the case where the file has no rows at all).
func (R *Report) NoneParsed() bool {
	return R.Parsed == 0
}

//NoneMatched returns true if some rows were parsed, but none
//of them passed the length and direction filters.
func (R *Report) NoneMatched() bool {
	return R.Parsed > 0 && R.Kept == 0
}

//Failed returns the results for the rows with the given status.
func (R *Report) Failed(status RowStatus) []RowResult {
	var ret []RowResult
	for _, v := range R.Results {
		if v.Status == status {
			ret = append(ret, v)
		}
	}
	return ret
}

func (R *Report) String() string {
	s := fmt.Sprintf("%d rows read, %d parsed, %d kept", R.Rows, R.Parsed, R.Kept)
	drops := make([]string, 0, 5)
	for _, v := range []struct {
		s RowStatus
		n int
	}{{RowMissingColumn, R.MissingColumn}, {RowBadNumber, R.BadNumber}, {RowSyntax, R.Syntax}, {RowTooShort, R.TooShort}, {RowUpward, R.Upward}} {
		if v.n > 0 {
			drops = append(drops, fmt.Sprintf("%s: %d", v.s, v.n))
		}
	}
	if len(drops) > 0 {
		s += " (dropped, " + strings.Join(drops, ", ") + ")"
	}
	switch {
	case R.NoneParsed():
		s += ". No row could be parsed"
	case R.NoneMatched():
		s += ". No track passed the filters"
	}
	return s
}
