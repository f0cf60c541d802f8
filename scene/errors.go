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

package scene

import "fmt"

//Error is the error type for the scene package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("scene: %s", err.message)
}

//Decorate returns the decoration slice of the error with dec added.
//The error itself is not changed.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco[:len(err.deco):len(err.deco)], dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//FileError is an error reading or writing a scene file.
type FileError struct {
	message  string
	filename string
	deco     []string
	critical bool
	err      error
}

func (err FileError) Error() string {
	return fmt.Sprintf("scene file %s: %s", err.filename, err.message)
}

//FileName returns the file to which the failing operation was associated
func (err FileError) FileName() string { return err.filename }

func (err FileError) Unwrap() error { return err.err }

func (err FileError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco[:len(err.deco):len(err.deco)], dec)
	}
	return err.deco
}

func (err FileError) Critical() bool { return err.critical }

//errDecorate returns a copy of err with the caller's name added to its decoration.
//Errors of other types are returned unchanged.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case Error:
		e.deco = e.Decorate(caller)
		return e
	case FileError:
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
