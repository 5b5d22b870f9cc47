package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cogwheel/jayvee/internal/classfile"
	"github.com/cogwheel/jayvee/internal/interp"
	"github.com/cogwheel/jayvee/internal/loader"
	"github.com/cogwheel/jayvee/internal/runtime"
	"github.com/cogwheel/jayvee/utils"
)

var runCmd = &cobra.Command{
	Use:               "run [class-file] [method]",
	Short:             "Load a class and execute one of its methods",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".class"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, method := args[0], args[1]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}

		buf, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		cf, err := classfile.Parse(buf)
		if err != nil {
			return err
		}
		className, err := cf.ClassName()
		if err != nil {
			return err
		}

		m := findMethod(cf, method)
		if m == nil {
			return fmt.Errorf("method not found: %s.%s", className, method)
		}

		classPath := append([]string{filepath.Dir(filename)}, cfg.ClassPath...)
		ma, heap, err := runtime.Bootstrap(loader.New(classPath))
		if err != nil {
			return err
		}
		// Registers className in the method area so GETSTATIC/PUTSTATIC
		// and instance allocation resolve against it.
		if _, err := ma.Get(className); err != nil {
			return err
		}

		frame, err := interp.NewFrame(m, className, cf.ConstantPool)
		if err != nil {
			return err
		}
		frames := interp.NewFrameStack()
		frames.Push(frame)

		env := &interp.Env{MethodArea: ma, Heap: heap, Log: log.Logger}
		ret, err := interp.Execute(env, frames)
		if err != nil {
			return err
		}

		fmt.Printf("%s.%s returned %v\n", className, method, ret)
		return nil
	},
}

// findMethod looks up sig against cf's own methods, exact match on
// "name:descriptor" first, then by name alone (mirroring
// runtime.Class.GetMethod's two-step lookup) against the same
// ConstantPool the frame will execute against.
func findMethod(cf *classfile.ClassFile, sig string) *classfile.Method {
	for _, m := range cf.Methods {
		if m.Signature == sig {
			return m
		}
	}
	if !strings.Contains(sig, ":") {
		for _, m := range cf.Methods {
			if m.Name == sig {
				return m
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
