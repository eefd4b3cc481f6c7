package cmd

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/h2non/gock"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/elyby/hyfetch/internal/card"
	"github.com/elyby/hyfetch/internal/config"
	"github.com/elyby/hyfetch/internal/hypixel"
)

const notchUuid = "069a79f4-44e9-4726-a5be-fca90e38aaf5"

type RootCmdSuite struct {
	suite.Suite

	configHome string
	out        *bytes.Buffer
	errOut     *bytes.Buffer
}

func (s *RootCmdSuite) SetupTest() {
	home := s.T().TempDir()
	s.configHome = filepath.Join(home, ".config")
	s.T().Setenv("HOME", home)
	s.T().Setenv("XDG_CONFIG_HOME", s.configHome)
	s.T().Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "xdg"))
	s.T().Setenv("HYFETCH_API_KEY", "")

	viper.Reset()
	s.Require().NoError(viper.BindPFlag(config.ApiKey, RootCmd.Flags().Lookup("key")))

	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
	RootCmd.SetOut(s.out)
	RootCmd.SetErr(s.errOut)
}

func (s *RootCmdSuite) TearDownTest() {
	RootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	RootCmd.SetArgs(nil)

	gock.Off()
}

func (s *RootCmdSuite) execute(args ...string) int {
	RootCmd.SetArgs(args)

	return Execute(s.errOut)
}

func (s *RootCmdSuite) TestNoArguments() {
	s.Assert().Equal(1, s.execute())
	s.Assert().Equal("Please specify exactly one ign to fetch\n", s.errOut.String())
	s.Assert().Empty(s.out.String())
}

func (s *RootCmdSuite) TestTooManyArguments() {
	s.Assert().Equal(1, s.execute("Notch", "jeb_"))
	s.Assert().Equal("Please specify exactly one ign to fetch\n", s.errOut.String())
}

func (s *RootCmdSuite) TestMissingKey() {
	s.Assert().Equal(1, s.execute("Notch"))
	s.Assert().Equal("Please specify an api key with --save-key\n", s.errOut.String())
	s.Assert().Empty(s.out.String())
}

func (s *RootCmdSuite) TestUnknownMode() {
	s.Assert().Equal(0, s.execute("--mode", "speedrun", "-k", "key", "Notch"))
	s.Assert().Equal("Unknown mode: speedrun\n", s.errOut.String())
	s.Assert().Empty(s.out.String())
}

func (s *RootCmdSuite) TestSaveKey() {
	s.Assert().Equal(0, s.execute("--save-key", "d4f1c2"))

	path := filepath.Join(s.configHome, "hyfetch", "config")
	s.Assert().Contains(s.out.String(), path)

	values, err := config.Load([]string{path})
	s.Require().NoError(err)
	s.Assert().Equal("d4f1c2", values[config.ApiKey])
}

func (s *RootCmdSuite) TestKeyFromConfigFile() {
	s.Require().NoError(config.SaveKey(filepath.Join(s.configHome, "hyfetch", "config"), "from-file"))

	s.mockMojang()
	gock.New("https://api.hypixel.net").
		Get("/player").
		MatchParam("uuid", notchUuid).
		MatchHeader("API-Key", "from-file").
		Reply(200).
		JSON(map[string]any{"success": true, "player": map[string]any{"uuid": "069a79f44e9a4726a5befca90e38aaf5", "displayname": "Notch"}})

	s.Assert().Equal(0, s.execute("--duels", "Notch"))
	s.Assert().Contains(s.out.String(), "this player has never played duels")
	s.Assert().True(gock.IsDone())
}

func (s *RootCmdSuite) TestRenderBedwars() {
	s.mockMojang()
	gock.New("https://api.hypixel.net").
		Get("/player").
		MatchParam("uuid", notchUuid).
		MatchHeader("API-Key", "key").
		Reply(200).
		JSON(map[string]any{
			"success": true,
			"player": map[string]any{
				"uuid":        "069a79f44e9a4726a5befca90e38aaf5",
				"displayname": "Notch",
				"stats": map[string]any{
					"Bedwars": map[string]any{
						"games_played_bedwars": 12,
						"kills_bedwars":        80,
						"deaths_bedwars":       40,
					},
				},
			},
		})

	s.Assert().Equal(0, s.execute("--bw", "-k", "key", "Notch"))
	s.Assert().Empty(s.errOut.String())
	s.Assert().Contains(s.out.String(), "Notch\n")
	s.Assert().Contains(s.out.String(), "2.0 (kills: 80, deaths: 40)")
	s.Assert().True(gock.IsDone())
}

func (s *RootCmdSuite) TestRemoteFailure() {
	s.mockMojang()
	gock.New("https://api.hypixel.net").
		Get("/player").
		Reply(403).
		JSON(map[string]any{"success": false, "cause": "Invalid API key"})

	s.Assert().Equal(1, s.execute("-b", "-k", "key", "Notch"))
	s.Assert().Equal("unable to retrieve the Hypixel player: 403: Invalid API key\n", s.errOut.String())
	s.Assert().Empty(s.out.String())
}

func (s *RootCmdSuite) mockMojang() {
	gock.New("https://api.ashcon.app").
		Get("/mojang/v2/user/Notch").
		Reply(200).
		JSON(map[string]any{
			"uuid":     notchUuid,
			"username": "Notch",
			"textures": map[string]any{
				"skin": map[string]any{"data": encodedSkin(s.T())},
			},
		})
}

func TestRootCmd(t *testing.T) {
	suite.Run(t, new(RootCmdSuite))
}

func TestExitCode(t *testing.T) {
	for _, c := range []struct {
		err      error
		code     int
		expected string
	}{
		{nil, 0, ""},
		{&UnknownModeError{Mode: "speedrun"}, 0, "Unknown mode: speedrun\n"},
		{ErrMissingCredential, 1, "Please specify an api key with --save-key\n"},
		{fmt.Errorf("unable to retrieve the Hypixel player: %w", &hypixel.TooManyRequestsError{}), 1, "unable to retrieve the Hypixel player: 429: Too Many Requests\n"},
	} {
		out := &bytes.Buffer{}
		assert.Equal(t, c.code, ExitCode(c.err, out))
		assert.Equal(t, c.expected, out.String())
	}
}

func TestUnknownModeError(t *testing.T) {
	err := error(&UnknownModeError{Mode: "speedrun"})
	assert.True(t, errors.Is(err, card.ErrUnknownMode))
}

func TestFlagAliases(t *testing.T) {
	for alias, expected := range map[string]card.Mode{
		"--bedwars":  card.ModeBedwars,
		"--bed-wars": card.ModeBedwars,
		"--bw":       card.ModeBedwars,
		"-b":         card.ModeBedwars,
		"--sw":       card.ModeSkywars,
		"--skywars":  card.ModeSkywars,
		"-d":         card.ModeDuels,
		"-g":         card.ModeGeneral,
	} {
		flags := RootCmd.Flags()
		assert.NoError(t, flags.Parse([]string{alias}), alias)

		mode, err := selectedMode(flags)
		assert.NoError(t, err)
		assert.Equal(t, expected, mode, alias)

		flags.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func TestDefaultMode(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mode", "", "")

	mode, err := selectedMode(flags)
	assert.NoError(t, err)
	assert.Equal(t, card.ModeGeneral, mode)
}

func encodedSkin(t *testing.T) string {
	skin := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			skin.SetNRGBA(x, y, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, skin); err != nil {
		t.Fatal(err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
