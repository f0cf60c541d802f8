/*
 * histo.go, part of goShower.
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

//Package histo implements simple histograms, used in goShower to summarize
//the distribution of times in a shower.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("goShower/histo: %d dividers can't hold %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//EvenDividers returns the n+1 dividers for n bins of equal width
//spanning from min to max. The maximum is nudged up so a value equal to
//max still falls in the last bin.
func EvenDividers(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if max <= min {
		max = min + 1
	}
	d := floats.Span(make([]float64, n+1), min, max)
	d[n] = math.Nextafter(max, math.Inf(1))
	return d
}

//NewData returns a new histogram from the dividers and rawdata given
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Panics if fewer than 2 dividers are given.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("goShower/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//AddData adds the given data point(s) to the histogram.
//Points outside the dividers are not counted in any bin, but they do count
//for the total.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		for j, w := range D.dividers {
			//Values that are larger than the last divider are just omitted.
			if j == len(D.dividers)-1 {
				break
			}
			if w <= v && v < D.dividers[j+1] {
				D.histo[j]++
				break
			}
		}
	}
	D.total += len(point)
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Total returns the number of data points added to the histogram.
func (D *Data) Total() int {
	return D.total
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the bins of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the bins of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Centers returns the middle point of each bin.
func (D *Data) Centers() []float64 {
	ret := make([]float64, len(D.histo))
	for i := range ret {
		ret[i] = (D.dividers[i] + D.dividers[i+1]) / 2
	}
	return ret
}

//ReHisto rebuilds the histogram from the rawdata, using the given dividers.
//rawdata is sorted in place.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	if rawdata != nil {
		sort.Float64s(rawdata)
		//stat.Histogram just panics instead of omitting the values that are off limits
		//so we remove them here before the call.
		maxi := sort.SearchFloat64s(rawdata, dividers[len(dividers)-1])
		mini := sort.SearchFloat64s(rawdata, dividers[0])
		rawdata = rawdata[mini:maxi]
	}
	D.total = len(rawdata) //as this could have been modified
	D.normalized = false
	D.histo = stat.Histogram(nil, dividers, rawdata, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
