package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cogwheel/jayvee/internal/classfile"
	"github.com/cogwheel/jayvee/utils"
)

var decodeCmd = &cobra.Command{
	Use:               "decode [class-file]",
	Short:             "Decode a JVMS 4 class file and print its structure",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".class"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		if ext := filepath.Ext(filename); ext != ".class" {
			fmt.Printf("Warning: File extension '%s' is not '.class', but proceeding anyway...\n", ext)
		}

		buf, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		cf, err := classfile.Parse(buf)
		if err != nil {
			return err
		}
		return printClassFile(cf)
	},
}

func printClassFile(cf *classfile.ClassFile) error {
	name, err := cf.ClassName()
	if err != nil {
		return err
	}
	super, err := cf.SuperClassName()
	if err != nil {
		return err
	}
	ifaces, err := cf.InterfaceNames()
	if err != nil {
		return err
	}

	fmt.Printf("class %s (version %d.%d)\n", name, cf.MajorVersion, cf.MinorVersion)
	if super != "" {
		fmt.Printf("  extends %s\n", super)
	}
	for _, i := range ifaces {
		fmt.Printf("  implements %s\n", i)
	}
	fmt.Printf("  public=%v final=%v abstract=%v interface=%v\n",
		cf.IsPublic(), cf.IsFinal(), cf.IsAbstract(), cf.IsInterface())

	fmt.Println("  fields:")
	for _, f := range cf.FieldNames() {
		fmt.Printf("    %s\n", f)
	}

	fmt.Println("  methods:")
	for _, sig := range cf.MethodSignatures() {
		fmt.Printf("    %s:%s\n", sig[0], sig[1])
	}

	fmt.Println("  constant pool:")
	fmt.Print(cf.ConstantPool.Dump())
	return nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
