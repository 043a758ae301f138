package catalog

import "device_library/internal/models"

const (
	toolboxArduino  = "arduino"
	toolboxMicrobit = "microbit"

	connectingMessage = "Connecting"
	nomoKitURL        = "https://nomo-kit.com"
)

var (
	arduinoModes     = []models.ProgramMode{models.ProgramModeRealtime, models.ProgramModeUpload}
	uploadOnly       = []models.ProgramMode{models.ProgramModeUpload}
	arduinoLanguages = []models.ProgramLanguage{models.ProgramLanguageBlock, models.ProgramLanguageC, models.ProgramLanguageCpp}
)

// icon returns the asset path for a bundled device image.
func icon(dir, file string) string {
	return "static/devices/" + dir + "/" + file
}

// serialBoard fills the connection fields shared by every USB-serial board.
func serialBoard(d models.DeviceDescriptor) models.DeviceDescriptor {
	d.Featured = true
	d.SerialportRequired = true
	d.LaunchPeripheralConnectionFlow = true
	d.ConnectingMessage = connectingMessage
	if d.BaseToolBox == "" {
		d.BaseToolBox = toolboxArduino
	}
	return d
}

// Builtin returns the built-in device table. Index 0 is the unselect entry.
// Each call returns fresh values.
func Builtin() []models.DeviceDescriptor {
	return []models.DeviceDescriptor{
		{
			DeviceID:        models.UnselectDeviceID,
			Name:            "Unselect device",
			IconURL:         icon("unselectDevice", "unselectDevice.png"),
			Description:     "Unselect the device, return to pure realtime programming mode.",
			Featured:        true,
			ProgramMode:     []models.ProgramMode{models.ProgramModeRealtime},
			ProgramLanguage: []models.ProgramLanguage{models.ProgramLanguageBlock},
			Tags:            []string{"realtime"},
			FreeDevice:      true,
		},
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoUno",
			Name:                   "Arduino Uno",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store.arduino.cc/usa/arduino-uno-rev3",
			IconURL:                icon("arduinoUno", "arduinoUno.png"),
			Description:            "A great board to get started with electronics and coding.",
			DefaultBaudRate:        "9600",
			ConnectionIconURL:      icon("arduinoUno", "arduinoUno-illustration.svg"),
			ConnectionSmallIconURL: icon("arduinoUno", "arduinoUno-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://store.arduino.cc/usa/arduino-uno-rev3",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoUnoR4Wifi",
			Name:                   "Arduino Uno R4 Wifi",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store.arduino.cc/products/uno-r4-wifi",
			IconURL:                icon("arduinoUnoR4Wifi", "r4.png"),
			Description:            "The Arduino UNO R4 WiFi merges the RA4M1 microprocessor from Renesas with the ESP32-S3 from Espressif",
			DefaultBaudRate:        "115200",
			ConnectionIconURL:      icon("arduinoUnoR4Wifi", "r4-108.svg"),
			ConnectionSmallIconURL: icon("arduinoUnoR4Wifi", "r440.svg"),
			ProgramMode:            uploadOnly,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://store.arduino.cc/products/uno-r4-wifi",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoNano",
			Name:                   "Arduino Nano",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store.arduino.cc/usa/arduino-nano",
			IconURL:                icon("arduinoNano", "arduinoNano.png"),
			Description:            "The Arduino Nano is a classic small board using ATmega328P to build your projects with.",
			DefaultBaudRate:        "9600",
			ConnectionIconURL:      icon("arduinoNano", "arduinoNano-illustration.svg"),
			ConnectionSmallIconURL: icon("arduinoNano", "arduinoNano-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://store.arduino.cc/usa/arduino-nano",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoNano2",
			Name:                   "Arduino Nano 2",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store.arduino.cc/usa/arduino-nano",
			IconURL:                icon("arduinoNano", "arduinoNano.png"),
			Description:            "The Arduino Nano 2 is a classic small board using ATmega328P old to build your projects with.",
			DefaultBaudRate:        "9600",
			ConnectionIconURL:      icon("arduinoNano", "arduinoNano-illustration.svg"),
			ConnectionSmallIconURL: icon("arduinoNano", "arduinoNano-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://store.arduino.cc/usa/arduino-nano",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoNanoNobot",
			Name:                   "NoBot Base",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store.arduino.cc/usa/arduino-nano",
			IconURL:                icon("nobot", "nobot.png"),
			Description:            "Build : Robot Avoider , Robot Line Follower ,Robot Light Follower , Robot Object Following,Robot Soccer, Robot Sumo.",
			DefaultBaudRate:        "9600",
			ConnectionIconURL:      icon("nobot", "nobot40.svg"),
			ConnectionSmallIconURL: icon("nobot", "nobot108-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"kit", "arduino"},
			HelpLink:               "https://store.arduino.cc/usa/arduino-nano",
			BuyNowURL:              nomoKitURL,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoELFUno",
			Name:                   "G-Bot Nomo",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://www.nomo-kit.com/",
			IconURL:                icon("weeemakeELFUno", "weeemakeELFUno.png"),
			Description:            "G-Bot Nomo is a metal educational robot DIY platform for kids 8+ to professional level to learn robotics, programming, AI, IoT, etc.",
			DefaultBaudRate:        "9600",
			ConnectionIconURL:      icon("weeemakeELFUno", "weeemakeELFUno.svg"),
			ConnectionSmallIconURL: icon("weeemakeELFUno", "weeemakeELFUno-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"kit", "arduino"},
			HelpLink:               "https://www.weeemake.com/",
			BuyNowURL:              "https://tokopedia.com/instareducation/g-bot-nomo-std-u-v1-0?extParam=src%3Dshop%26whid%3D13462131",
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoEsp32",
			Name:                   "ESP32",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "espressif",
			LearnMore:              "https://www.espressif.com/",
			IconURL:                icon("esp32", "esp32.png"),
			Description:            "Wi-Fi & Bluetooth control board with rich functions.",
			DefaultBaudRate:        "115200",
			ConnectionIconURL:      icon("esp32", "esp32-illustration.svg"),
			ConnectionSmallIconURL: icon("esp32", "esp32-small.svg"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://docs.espressif.com/projects/esp-idf/zh_CN/latest/esp32/hw-reference/esp32/get-started-devkitc.html",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoEsp32Cam",
			Name:                   "ESP32-CAM",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "espressif",
			LearnMore:              "https://www.espressif.com/",
			IconURL:                icon("esp32Cam", "esp32Cam.png"),
			Description:            "The ESP32-CAM is a small size, low power consumption camera module based on ESP32. It comes with an OV2640 camera and provides onboard TF card slot",
			DefaultBaudRate:        "115200",
			ConnectionIconURL:      icon("esp32Cam", "esp32Cam.svg"),
			ConnectionSmallIconURL: icon("esp32Cam", "esp32Cam-small.svg"),
			ProgramMode:            uploadOnly,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://docs.espressif.com/projects/esp-idf/zh_CN/latest/esp32/hw-reference/esp32/get-started-devkitc.html",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoNano33BleSense",
			Name:                   "Arduino Nano 33 BLE Sense",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "arduino.cc",
			LearnMore:              "https://store-usa.arduino.cc/products/nano-33-ble-sense-rev2",
			IconURL:                icon("arduinoNano33", "nano33.png"),
			Description:            "An AI enabled board in the shape of the classic Nano board, with all the sensors to start building your next project right away.",
			DefaultBaudRate:        "115200",
			ConnectionIconURL:      icon("arduinoNano33", "nano33.svg"),
			ConnectionSmallIconURL: icon("arduinoNano33", "nano33-small.svg"),
			ProgramMode:            uploadOnly,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino"},
			HelpLink:               "https://store-usa.arduino.cc/products/nano-33-ble-sense-rev2",
			FreeDevice:             true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:                   "arduinoEsp8266NodeMCU",
			Name:                       "NodeMCU",
			Type:                       models.DeviceTypeArduino,
			Manufactor:                 "espressif",
			LearnMore:                  "https://www.nodemcu.com",
			IconURL:                    icon("esp8266NodeMCU", "esp8266NodeMCU.png"),
			Description:                "Low-cost Wi-Fi SOC control board.",
			DefaultBaudRate:            "76800",
			ConnectionIconURL:          icon("esp8266NodeMCU", "esp8266NodeMCU-illustration.svg"),
			ConnectionSmallIconURL:     icon("esp8266NodeMCU", "esp8266NodeMCU-small.svg"),
			DeviceExtensionsCompatible: "arduinoEsp8266",
			ProgramMode:                uploadOnly,
			ProgramLanguage:            arduinoLanguages,
			Tags:                       []string{"arduino"},
			HelpLink:                   "https://arduino-esp8266.readthedocs.io/en/3.0.0/index.html",
			FreeDevice:                 true,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:                   "nomoBotStarterKit",
			Name:                       "Nomo Bot Starter Kit",
			Type:                       models.DeviceTypeArduino,
			Manufactor:                 "IDN Boarding School & Instar Education",
			LearnMore:                  "https://www.nodemcu.com",
			IconURL:                    icon("nomoBotStarterKit", "nomobot-startkerkit.png"),
			Description:                "Low-cost Robot Kit based on ESP8266 board for build and learn about robotics, IoT, etc.",
			DefaultBaudRate:            "76800",
			ConnectionIconURL:          icon("nomoBotStarterKit", "nomobot-starterkit-illustration.png"),
			ConnectionSmallIconURL:     icon("nomoBotStarterKit", "nomobot-starterkit-small.png"),
			DeviceExtensionsCompatible: "arduinoEsp8266",
			ProgramMode:                uploadOnly,
			ProgramLanguage:            arduinoLanguages,
			Tags:                       []string{"arduino", "kit"},
			HelpLink:                   nomoKitURL,
			BuyNowURL:                  nomoKitURL,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "arduinoEsp32Nomobot",
			Name:                   "NOMOBOT Basic Kit",
			Type:                   models.DeviceTypeArduino,
			Manufactor:             "Instar Education",
			LearnMore:              "https://www.esp32.com",
			IconURL:                icon("esp32NomobotBasicKit", "nomobot_basicKit.png"),
			Description:            "Low-cost Robot Kit based on ESP32 board for build and learn about robotics, IoT, AI, etc.",
			DefaultBaudRate:        "76800",
			ConnectionIconURL:      icon("esp32NomobotBasicKit", "nomobot-basicKit-illustration.png"),
			ConnectionSmallIconURL: icon("esp32NomobotBasicKit", "nomobot-basicKit-small.png"),
			ProgramMode:            arduinoModes,
			ProgramLanguage:        arduinoLanguages,
			Tags:                   []string{"arduino", "kit"},
			HelpLink:               nomoKitURL,
			BuyNowURL:              nomoKitURL,
		}),
		serialBoard(models.DeviceDescriptor{
			DeviceID:               "microbitV2",
			Name:                   "Micro:bit V2",
			Type:                   models.DeviceTypeMicrobit,
			Manufactor:             "microbit.org",
			LearnMore:              "https://microbit.org/",
			IconURL:                icon("microbitV2", "microbitV2.png"),
			Description:            "Upgraded processor, built-In speaker and microphone, touch sensitive logo.",
			DefaultBaudRate:        "115200",
			ConnectionIconURL:      icon("microbitV2", "microbitV2-illustration.svg"),
			ConnectionSmallIconURL: icon("microbitV2", "microbitV2-small.svg"),
			BaseToolBox:            toolboxMicrobit,
			ProgramMode:            arduinoModes,
			ProgramLanguage:        []models.ProgramLanguage{models.ProgramLanguageBlock, models.ProgramLanguageMicroPython},
			Tags:                   []string{"microPython"},
			HelpLink:               "https://microbit.org/get-started/first-steps/introduction/",
			FreeDevice:             true,
		}),

		// Parents that exist in the VM only as templates for derived boards.
		hiddenParent("arduinoUnoUltra"),
		hiddenParent("arduinoSE"),
		hiddenParent("arduinoEsp8266"),
	}
}

func hiddenParent(id string) models.DeviceDescriptor {
	return models.DeviceDescriptor{
		DeviceID:    id,
		Type:        models.DeviceTypeArduino,
		Featured:    true,
		Hide:        true,
		BaseToolBox: toolboxArduino,
	}
}
