/*
 * io.go, part of goShower.
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

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdrc struct {
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

type nopwc struct {
	io.Writer
}

func (n nopwc) Close() error { return nil }

//compression returns the compression format for the file name, from its extension:
//"zstd" for .zst and .zstd, "gzip" for .gz, and "" (no compression) otherwise.
func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return "zstd"
	case ".gz":
		return "gzip"
	default:
		return ""
	}
}

//Encode writes S to w as indented JSON.
func Encode(w io.Writer, S *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(S); err != nil {
		return Error{"Can't encode scene: " + err.Error(), []string{"Encode"}, true}
	}
	return nil
}

//Decode reads a JSON scene from r, and validates it.
func Decode(r io.Reader) (*Scene, error) {
	S := new(Scene)
	if err := json.NewDecoder(r).Decode(S); err != nil {
		return nil, Error{"Can't decode scene: " + err.Error(), []string{"Decode"}, true}
	}
	if err := S.Validate(); err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return S, nil
}

//Write validates S and writes it to the file name, as JSON. The file is compressed with
//zstd if its extension is .zst or .zstd, and with gzip if it is .gz. Scenes that Read
//would reject are not written, and no file is left behind if writing fails.
func Write(S *Scene, name string) (err error) {
	if err = S.Validate(); err != nil {
		return errDecorate(err, "Write")
	}
	f, err := os.Create(name)
	if err != nil {
		return FileError{"Can't create file", name, []string{"Write"}, true, err}
	}
	defer func() {
		f.Close()
		if err != nil {
			os.Remove(name)
		}
	}()
	var w io.WriteCloser
	switch compression(name) {
	case "zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gzip":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		w = nopwc{f}
	}
	if err != nil {
		return FileError{"Can't start compressor", name, []string{"Write"}, true, err}
	}
	if err = Encode(w, S); err != nil {
		w.Close()
		return errDecorate(err, "Write")
	}
	if err = w.Close(); err != nil {
		return FileError{"Can't flush compressed data", name, []string{"Write"}, true, err}
	}
	if err = f.Close(); err != nil {
		return FileError{"Can't close file", name, []string{"Write"}, true, err}
	}
	return nil
}

//Read reads and validates the scene in the file name. The compression is
//chosen as in Write.
func Read(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, FileError{"Can't open file", name, []string{"Read"}, true, err}
	}
	defer f.Close()
	var r io.ReadCloser
	switch compression(name) {
	case "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		r = zstdrc{d}
	case "gzip":
		r, err = gzip.NewReader(f)
	default:
		r = io.NopCloser(f)
	}
	if err != nil {
		return nil, FileError{"Can't start decompressor", name, []string{"Read"}, true, err}
	}
	defer r.Close()
	S, err := Decode(r)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return S, nil
}
