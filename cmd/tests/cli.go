package main

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var cmdName = ""
	var flags = make(map[string]string)
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			if i < len(args)-1 {
				flags[strings.TrimPrefix(arg, "-")] = args[i+1]
				i++
			}
		} else if cmdName == "" {
			cmdName = arg
		}
	}
	return &CommandArgs{
		commandName: cmdName,
		params:      flags,
	}
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

func (ca *CommandArgs) GetInt(name string, defaultVal int) int {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	var v, err = strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return v
}

type CommandHandler struct {
	items map[string]func(*CommandArgs) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(*CommandArgs) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(*CommandArgs) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(args *CommandArgs) error {
	handler, found := ch.items[args.CommandName()]
	if !found {
		return fmt.Errorf("command not found %v", args.CommandName())
	}
	return handler(args)
}
