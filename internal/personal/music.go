package personal

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

type track struct {
	title    string
	artist   string
	duration string
}

var trackCatalog = []track{
	{"Bohemian Rhapsody", "Queen", "4:55"},
	{"Stairway to Heaven", "Led Zeppelin", "8:02"},
	{"Hotel California", "Eagles", "6:30"},
	{"Imagine", "John Lennon", "3:03"},
	{"Sweet Child O' Mine", "Guns N' Roses", "5:56"},
	{"Billie Jean", "Michael Jackson", "4:54"},
	{"Smells Like Teen Spirit", "Nirvana", "5:01"},
	{"November Rain", "Guns N' Roses", "8:57"},
	{"One", "Metallica", "7:27"},
	{"Wonderwall", "Oasis", "4:18"},
	{"Lose Yourself", "Eminem", "5:26"},
	{"Rolling in the Deep", "Adele", "3:48"},
	{"Shape of You", "Ed Sheeran", "3:53"},
	{"Blinding Lights", "The Weeknd", "3:20"},
	{"Someone Like You", "Adele", "4:45"},
	{"Uptown Funk", "Mark Ronson ft. Bruno Mars", "4:30"},
	{"Thinking Out Loud", "Ed Sheeran", "4:41"},
	{"Stay", "The Kid LAROI & Justin Bieber", "2:21"},
	{"Levitating", "Dua Lipa", "3:23"},
	{"Good 4 U", "Olivia Rodrigo", "2:58"},
}

var extraPlaylists = []string{"Workout Mix", "Chill Vibes", "Road Trip"}

var sampleTracks = []string{"morning_run.mp3", "focus_beats.mp3", "weekend_chill.mp3"}

func generateMusic(id config.Identity, rng *rand.Rand, now time.Time, musicDir string) ([]string, error) {
	var written []string

	mainPath := filepath.Join(musicDir, "My_Playlist.m3u")
	if err := layout.WriteString(mainPath, playlistText(id.Name, now)); err != nil {
		return nil, err
	}
	written = append(written, mainPath)

	for _, name := range extraPlaylists {
		content := fmt.Sprintf("#EXTM3U\n#PLAYLIST:%s\n# Created for %s moments.\n# Contains 15-20 carefully selected songs.\n",
			name, strings.ToLower(name))
		path := filepath.Join(musicDir, strings.ReplaceAll(name, " ", "_")+".m3u")
		if err := layout.WriteString(path, content); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	for _, name := range sampleTracks {
		path := filepath.Join(musicDir, name)
		if err := layout.WriteFile(path, mp3Stub(rng)); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

func playlistText(owner string, now time.Time) string {
	var b strings.Builder
	b.WriteString("MY MUSIC PLAYLIST\n")
	fmt.Fprintf(&b, "Owner: %s\n", owner)
	fmt.Fprintf(&b, "Created: %s\n", now.Format("January 02, 2006"))
	fmt.Fprintf(&b, "Total Songs: %d\n\n", len(trackCatalog))
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	for i, t := range trackCatalog {
		fmt.Fprintf(&b, "%2d. %-40s - %-30s [%s]\n", i+1, t.title, t.artist, t.duration)
	}
	return b.String()
}

// mp3Stub returns a minimal ID3v2 container followed by padding, enough
// for type sniffers to see an audio file without shipping real media.
func mp3Stub(rng *rand.Rand) []byte {
	header := []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	padding := make([]byte, randutil.Between(rng, 1500, 4000))
	rng.Read(padding)
	return append(header, padding...)
}
