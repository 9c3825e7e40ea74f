package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"voyager.com/handparser/logging"
	"voyager.com/handparser/parser"
	"voyager.com/handparser/rest"
	"voyager.com/handparser/util"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

func main() {
	godotenv.Load()
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLevel())

	var handFile = flag.String("hand", "", "hand history file to parse")
	var roomName = flag.String("room", "fulltilt", "room format of the hand file")
	var roomsConfig = flag.String("rooms-config", "", "YAML file overriding room settings")
	var runServer = flag.Bool("server", false, "run the REST server")
	flag.Parse()

	if *roomsConfig != "" {
		config, err := parser.LoadRoomsConfig(*roomsConfig)
		if err == nil {
			err = config.Apply()
		}
		if err != nil {
			mainLogger.Fatal().Msgf("%v", err)
		}
	}

	if *runServer {
		if err := rest.RunRestServer(util.Env.GetPort()); err != nil {
			mainLogger.Fatal().Msgf("REST server failed: %v", err)
		}
		return
	}

	if *handFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	text, err := ioutil.ReadFile(*handFile)
	if err != nil {
		mainLogger.Fatal().Msgf("Error reading %s: %v", *handFile, err)
	}
	hand, err := parser.Parse(*roomName, string(text))
	if err != nil {
		mainLogger.Fatal().Msgf("Error parsing %s: %v", *handFile, err)
	}
	data, err := jsoniter.MarshalIndent(hand, "", "  ")
	if err != nil {
		mainLogger.Fatal().Msgf("Error encoding hand: %v", err)
	}
	fmt.Println(string(data))
}
