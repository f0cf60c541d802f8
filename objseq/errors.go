/*
 * errors.go, part of goShower.
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

package objseq

import (
	"errors"
	"fmt"
)

//Error is the error type for the objseq package. It implements shower.FileError.
type Error struct {
	message  string
	filename string //the input file or folder that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("objseq: %s", err.message)
	}
	return fmt.Sprintf("objseq file %s: %s", err.filename, err.message)
}

//Decorate returns the decoration slice of the error with deco added.
//The error itself is not changed.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco[:len(E.deco):len(E.deco)], deco)
	}
	return E.deco
}

//FileName returns the file to which the error is associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }

//IsNoMesh returns true if err means that a file contains no mesh.
func IsNoMesh(err error) bool {
	var e Error
	return errors.As(err, &e) && e.message == NoMesh
}

//errDecorate returns a copy of err with the caller's name added to its decoration.
//Errors of other types are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

const (
	UnableToOpen  = "Unable to open file"
	ReadFailure   = "Error reading file"
	NoMesh        = "No mesh in file"
	EmptySequence = "No meshes found"
)
