/*
 * interfaces.go, part of goShower.
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
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	Critical() bool
}

// FileError is the interface for errors associated with a file.
type FileError interface {
	Error
	FileName() string
}

// SError is the error type of the shower package. It implements FileError.
type SError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //the underlying error, if any.
}

func (err SError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("goShower: %s", err.message)
	}
	return fmt.Sprintf("goShower: file %s: %s", err.filename, err.message)
}

//Decorate returns the decoration slice of the error with deco added. As
//the error is a value, it is not changed. Use errDecorate to get a decorated error.
func (err SError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco[:len(err.deco):len(err.deco)], deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated, if any.
func (err SError) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err SError) Critical() bool { return err.critical }

//Unwrap returns the underlying error, so errors.Is and errors.As can see it.
func (err SError) Unwrap() error { return err.err }

//errDecorate returns a copy of err with the caller's name added to its decoration.
//Errors of other packages are returned as they are.
func errDecorate(err error, caller string) error {
	e, ok := err.(SError)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

const (
	UnableToOpen   = "Unable to open file"
	NoEventFile    = "Event file not found"
	BadHeader      = "Can't read the CSV header"
	ReadFailure    = "Error reading CSV file"
	BadColumns     = "Column names must be non-empty and unique"
	BadShellRadius = "Shell radii must satisfy 0 <= rmin <= rmax"
	NoTracks       = "No tracks in the dataset"
)
