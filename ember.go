// This file is part of Ember.
//
// Ember is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/emberengine/ember/controllers"
	"github.com/emberengine/ember/environment"
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/logger"
	"github.com/emberengine/ember/modalflag"
	"github.com/emberengine/ember/performance/limiter"
	"github.com/emberengine/ember/script"
	"github.com/emberengine/ember/sdlplatform"
	"github.com/emberengine/ember/statsview"
	"github.com/emberengine/ember/termkeys"
	"github.com/emberengine/ember/version"
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// run opens a window and services the input devices until quit. events
// arriving at the input system are echoed to the debugging log, which is the
// nearest thing the input layer has to a display.
//
// SDL requires that the window is created and serviced on the main thread so
// run() must only be called from the main goroutine.
func run(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", 60, "update rate of the input loop")
	stats := md.AddBool("statsview", false, "run stats server")
	useTermKeys := md.AddBool("termkeys", false, "take keypresses from the controlling terminal")
	log := md.AddBool("log", true, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build (use the statsview build tag)")
		}
		statsview.Launch(os.Stdout)
	}

	env, err := environment.NewEnvironment("main", nil)
	if err != nil {
		return err
	}

	sys := input.NewSystem(env)
	defer sys.Destroy()

	// the demo has no scripting engine so it stands in for the scripting
	// host itself, counting the constants as they are published
	reg := &logRegistry{}
	script.Register(reg)
	logger.Logf("script", "registered %d input constants", reg.count)

	plt, err := sdlplatform.NewPlatform(sys, env.Prefs)
	if err != nil {
		return err
	}
	defer plt.Destroy()

	ctrl, err := controllers.NewControllers(sys, env.Prefs)
	if err != nil {
		return err
	}
	sys.AttachSource(ctrl)

	if *useTermKeys {
		keys, err := termkeys.NewKeys(sys)
		if err != nil {
			return err
		}
		sys.AttachSource(keys)
	}

	lim, err := limiter.NewFPSLimiter(*fps)
	if err != nil {
		return err
	}

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	running := true
	for running {
		lim.Wait()

		select {
		case <-intChan:
			fmt.Println("\r")
			running = false
			continue
		default:
		}

		// Update() invalidates the previous frame's events so it must run
		// before the event pump. everything Service() injects survives to
		// the drain below
		sys.Update(lim.Dt())
		running = plt.Service()

		for _, ev := range sys.Events() {
			logger.Logf("input", "%s: %s", ev.Device.Name(), ev.Type)
		}
	}

	return nil
}

// logRegistry implements script.Registry in place of a real scripting host.
type logRegistry struct {
	count int
}

func (r *logRegistry) SetSystemVariable(namespace string, name string, value int) {
	r.count++
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, release := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision && !release {
		fmt.Println(rev)
	}

	return nil
}
