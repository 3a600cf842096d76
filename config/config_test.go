package config

import (
	"testing"

	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/mediasan-cli/mediasan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Quality defaults to medium", func() {
			_ = Setup()
			So(viper.GetString(key.DownloadQuality), ShouldEqual, "medium")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("download.quality")
			So(result, ShouldEqual, "download_quality")
		})

		Convey("Field env names carry the application prefix", func() {
			f := Default[key.DownloadQuality]
			So(f.Env(), ShouldEqual, "MEDIASAN_DOWNLOAD_QUALITY")
		})
	})
}
