// This file is part of smpsim.
//
// smpsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// smpsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with smpsim.  If not, see <https://www.gnu.org/licenses/>.

package player

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// KeyPress puts the terminal into non-canonical mode and returns a channel
// that is closed when a key is pressed. The returned function restores the
// terminal and must be called before the program exits.
func KeyPress() (<-chan struct{}, func()) {
	var original unix.Termios
	err := termios.Tcgetattr(os.Stdin.Fd(), &original)
	if err != nil {
		// not a terminal. the channel will never be closed
		return make(chan struct{}), func() {}
	}

	raw := original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &raw)

	pressed := make(chan struct{})
	go func() {
		b := make([]byte, 1)
		_, _ = os.Stdin.Read(b)
		close(pressed)
	}()

	return pressed, func() {
		_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &original)
	}
}
