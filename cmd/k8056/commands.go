package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	relay "github.com/zing-dev/relay-k8056-sdk"
)

const (
	clientKey = "$client"
	errKey    = "$err"
)

var (
	commands = []*ishell.Cmd{
		relayCmd("set", "RELAY [ADDR] - close relay, 9 for all", (*relay.Client).Set),
		relayCmd("clear", "RELAY [ADDR] - open relay, 9 for all", (*relay.Client).Clear),
		relayCmd("toggle", "RELAY [ADDR] - toggle relay, 9 for all", (*relay.Client).Toggle),
		relayCmd("address", "NEW [ADDR] - change card address", (*relay.Client).SetAddress),
		relayCmd("byte", "NUM [ADDR] - set all relays from the bits of NUM", (*relay.Client).SendByte),
		simpleCmd("estop", "clear all relays on all cards", (*relay.Client).EmergencyStop),
		simpleCmd("force", "reset all cards to address 1", (*relay.Client).ForceAddress),
		simpleCmd("display", "show card address on the LEDs", (*relay.Client).GetAddress),
		{
			Name: "demo",
			Help: "cycle through every command",
			Func: func(c *ishell.Context) {
				report(c, demo(clientFrom(c), time.Second))
			},
		},
	}
	settle = func() { time.Sleep(relay.SettleDelay) }
	pause  = time.Sleep
)

func newShell() *ishell.Shell {
	shell := ishell.New()
	for _, cmd := range commands {
		shell.AddCmd(cmd)
	}
	return shell
}

func clientFrom(c *ishell.Context) *relay.Client {
	return c.Get(clientKey).(*relay.Client)
}

func report(c *ishell.Context, err error) {
	c.Set(errKey, err)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println("OK")
}

// parseArgs reads the value and an optional card address.
func parseArgs(args []string) (value, address int, err error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, 0, fmt.Errorf("expected VALUE [ADDR], got %d arguments", len(args))
	}
	if value, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, err
	}
	address = relay.DefaultAddress
	if len(args) == 2 {
		if address, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, err
		}
	}
	return value, address, nil
}

func relayCmd(name, help string, fn func(*relay.Client, int, int) error) *ishell.Cmd {
	return &ishell.Cmd{
		Name: name,
		Help: help,
		Func: func(c *ishell.Context) {
			value, address, err := parseArgs(c.Args)
			if err != nil {
				report(c, err)
				return
			}
			report(c, fn(clientFrom(c), value, address))
		},
	}
}

func simpleCmd(name, help string, fn func(*relay.Client) error) *ishell.Cmd {
	return &ishell.Cmd{
		Name: name,
		Help: help,
		Func: func(c *ishell.Context) {
			report(c, fn(clientFrom(c)))
		},
	}
}

// demo sets, clears and toggles every relay of card 1, then sends a bit pattern.
func demo(client *relay.Client, step time.Duration) error {
	sequence := []func(int, int) error{client.Set, client.Clear, client.Toggle, client.Toggle}
	for _, fn := range sequence {
		for i := 1; i <= relay.AllRelays; i++ {
			if err := fn(i, relay.DefaultAddress); err != nil {
				return err
			}
			pause(step)
		}
	}
	if err := client.Set(relay.AllRelays, relay.DefaultAddress); err != nil {
		return err
	}
	pause(step)
	if err := client.SendByte(170, relay.DefaultAddress); err != nil {
		return err
	}
	pause(step)
	return client.EmergencyStop()
}
