package golet

import (
	"io/ioutil"
	"path"
	"sort"

	"github.com/pkg/errors"
	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/golet/statik"
)

//go:generate statik -src=lib -f

// LoadLib loads the function definitions of the embedded prelude into env.
func LoadLib(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool {
		return fis[i].Name() < fis[j].Name()
	})
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".gl" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		b, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "read %s", fi.Name())
		}
		if err := loadDecls(env, fi.Name(), string(b)); err != nil {
			return err
		}
	}
	return nil
}

func loadDecls(env *Env, name, src string) error {
	node, err := Parse(src)
	if err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	if !isFuncChain(node) {
		return errors.Errorf("%s: the prelude may only define functions", name)
	}
	return errors.Wrapf(env.Load(node), "load %s", name)
}

func isFuncChain(node Node) bool {
	for node != nil {
		fn, ok := node.(*FuncDef)
		if !ok {
			return false
		}
		node = fn.Then
	}
	return true
}
