//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command wisp is a small Lisp-family interpreter: run it with no
// arguments for a REPL, one argument to evaluate a file, or two or
// more arguments to evaluate an inline source string.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/colinmarc/wisp/lisp"
)

// atExitMutex guards the list of exit functions.
var atExitMutex sync.Mutex

// atExitFuncs are functions called when Exit is invoked.
var atExitFuncs []func()

// RunAtExit registers a function to be invoked when Exit is called. There
// is no guarantee these run if the process is brought down abruptly (a
// signal, os.Exit elsewhere). Functions run in registration order.
func RunAtExit(fn func()) {
	atExitMutex.Lock()
	defer atExitMutex.Unlock()
	atExitFuncs = append(atExitFuncs, fn)
}

// Exit invokes the registered at-exit functions, then os.Exit(code). Use
// this instead of os.Exit directly so the log file gets flushed.
func Exit(code int) {
	atExitMutex.Lock()
	for _, fn := range atExitFuncs {
		fn()
	}
	atExitMutex.Unlock()
	os.Exit(code)
}

func main() {
	setupLogging()
	logSysInfo()

	env := lisp.Prelude()

	switch len(os.Args) {
	case 1:
		runREPL(env)
	case 2:
		runFile(env, os.Args[1])
	default:
		runSource(env, os.Args[2])
	}
	Exit(0)
}

// runFile reads path and evaluates every top-level form in it, printing
// each result. It aborts at the first read or eval error.
func runFile(env *lisp.Env, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		reportFatal(lisp.ErrIO(err))
	}
	runForms(env, string(data))
}

// runSource treats src as inline program text, same as runFile without
// going through the filesystem.
func runSource(env *lisp.Env, src string) {
	runForms(env, src)
}

func runForms(env *lisp.Env, src string) {
	forms, err := lisp.ReadAll(src)
	if err != nil {
		reportFatal(err)
	}
	for _, v := range forms {
		result, err := lisp.Eval(v, env)
		if err != nil {
			reportFatal(err)
		}
		fmt.Println(lisp.Print(result))
	}
}

func reportFatal(err error) {
	lisp.Report(os.Stderr, err)
	log.Println(err)
	Exit(1)
}

// runREPL implements the read-eval-print-loop described in spec: prompts
// "> " and continues with "  " while a form is incomplete, evaluating and
// printing each completed top-level form as soon as it parses.
func runREPL(env *lisp.Env) {
	errColor := color.New(color.FgRed)
	promptColor := color.New(color.Faint)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		log.Println(err)
		Exit(1)
	}
	defer rl.Close()

	var buffer string
	for {
		if buffer == "" {
			rl.SetPrompt(promptColor.Sprint("> "))
		} else {
			rl.SetPrompt(promptColor.Sprint("  "))
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buffer = ""
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Println(err)
			return
		}

		if buffer == "" {
			buffer = line
		} else {
			buffer = buffer + "\n" + line
		}

		results, evalErr := evalBuffer(buffer, env)
		for _, result := range results {
			fmt.Println(lisp.Print(result))
		}
		if evalErr == nil {
			buffer = ""
			continue
		}
		if lisp.IsUnexpectedEof(evalErr) {
			continue
		}
		var msg strings.Builder
		lisp.Report(&msg, evalErr)
		errColor.Fprint(os.Stderr, msg.String())
		log.Println(evalErr)
		buffer = ""
	}
}

// evalBuffer parses and evaluates every top-level form currently present
// in buf, in order, returning the results obtained before any error. An
// UnexpectedEof error means buf holds an incomplete form.
func evalBuffer(buf string, env *lisp.Env) ([]lisp.Value, error) {
	var results []lisp.Value
	r := lisp.NewReader(buf)
	for {
		v, ok, err := r.Read()
		if err != nil {
			return results, err
		}
		if !ok {
			return results, nil
		}
		result, err := lisp.Eval(v, env)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
}

func wispDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatalln(err)
	}
	return filepath.Join(usr.HomeDir, ".wisp")
}

func historyFilePath() string {
	dir := wispDir()
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.Mkdir(dir, 0755)
		}
	}
	return filepath.Join(dir, "history")
}

// setupLogging sets the output of the standard logger to a file under the
// user's home directory. If anything goes wrong, this function calls
// log.Fatal.
func setupLogging() {
	dir := wispDir()
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.Mkdir(dir, 0755)
		} else {
			log.Fatalln(err)
		}
	}
	logname := filepath.Join(dir, "messages.log")
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln(err)
	}

	out := bufio.NewWriter(logfile)
	log.SetOutput(out)
	closer := func() {
		out.Flush()
		logfile.Sync()
		logfile.Close()
	}
	RunAtExit(closer)
}

// logSysInfo writes a banner of system information to the log file, useful
// for debugging in the event of a report from a user.
func logSysInfo() {
	header := "-------------------------------------------------------------------------------"
	now := time.Now()
	log.Println(header)
	log.Printf("Log Session: %s\n", now.Format(time.ANSIC))
	log.Printf("Go Version = %s\n", runtime.Version())
	usr, err := user.Current()
	if err != nil {
		log.Println(err)
		return
	}
	log.Printf("Home Directory = %s\n", usr.HomeDir)
	pwd, err := os.Getwd()
	if err != nil {
		log.Println(err)
		return
	}
	log.Printf("Current Directory = %s\n", pwd)
	log.Println(header)
}
