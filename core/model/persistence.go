package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// SaveModel はモデルをファイルに保存する
//
// 使用例:
//
//	d := preprocessing.NewMDLPDiscretizer()
//	// ... d.Fit(X, y) ...
//	err := model.SaveModel(d, "discretizer.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer file.Close()

	if err := SaveModelToWriter(model, file); err != nil {
		return err
	}
	return file.Close()
}

// LoadModel はファイルからモデルを読み込む
//
//	var d preprocessing.MDLPDiscretizer
//	err := model.LoadModel(&d, "discretizer.gob")
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
func LoadModelFromReader(model interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
