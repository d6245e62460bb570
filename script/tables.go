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

// the tables in this file are mechanically derived from the SDL scancode
// and keycode lists

package script

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Scancodes is the static table of physical key identifiers.
var Scancodes = []Constant{
	{"A", int(sdl.SCANCODE_A)},
	{"B", int(sdl.SCANCODE_B)},
	{"C", int(sdl.SCANCODE_C)},
	{"D", int(sdl.SCANCODE_D)},
	{"E", int(sdl.SCANCODE_E)},
	{"F", int(sdl.SCANCODE_F)},
	{"G", int(sdl.SCANCODE_G)},
	{"H", int(sdl.SCANCODE_H)},
	{"I", int(sdl.SCANCODE_I)},
	{"J", int(sdl.SCANCODE_J)},
	{"K", int(sdl.SCANCODE_K)},
	{"L", int(sdl.SCANCODE_L)},
	{"M", int(sdl.SCANCODE_M)},
	{"N", int(sdl.SCANCODE_N)},
	{"O", int(sdl.SCANCODE_O)},
	{"P", int(sdl.SCANCODE_P)},
	{"Q", int(sdl.SCANCODE_Q)},
	{"R", int(sdl.SCANCODE_R)},
	{"S", int(sdl.SCANCODE_S)},
	{"T", int(sdl.SCANCODE_T)},
	{"U", int(sdl.SCANCODE_U)},
	{"V", int(sdl.SCANCODE_V)},
	{"W", int(sdl.SCANCODE_W)},
	{"X", int(sdl.SCANCODE_X)},
	{"Y", int(sdl.SCANCODE_Y)},
	{"Z", int(sdl.SCANCODE_Z)},
	{"1", int(sdl.SCANCODE_1)},
	{"2", int(sdl.SCANCODE_2)},
	{"3", int(sdl.SCANCODE_3)},
	{"4", int(sdl.SCANCODE_4)},
	{"5", int(sdl.SCANCODE_5)},
	{"6", int(sdl.SCANCODE_6)},
	{"7", int(sdl.SCANCODE_7)},
	{"8", int(sdl.SCANCODE_8)},
	{"9", int(sdl.SCANCODE_9)},
	{"0", int(sdl.SCANCODE_0)},
	{"RETURN", int(sdl.SCANCODE_RETURN)},
	{"ESCAPE", int(sdl.SCANCODE_ESCAPE)},
	{"BACKSPACE", int(sdl.SCANCODE_BACKSPACE)},
	{"TAB", int(sdl.SCANCODE_TAB)},
	{"SPACE", int(sdl.SCANCODE_SPACE)},
	{"MINUS", int(sdl.SCANCODE_MINUS)},
	{"EQUALS", int(sdl.SCANCODE_EQUALS)},
	{"LEFTBRACKET", int(sdl.SCANCODE_LEFTBRACKET)},
	{"RIGHTBRACKET", int(sdl.SCANCODE_RIGHTBRACKET)},
	{"BACKSLASH", int(sdl.SCANCODE_BACKSLASH)},
	{"NONUSHASH", int(sdl.SCANCODE_NONUSHASH)},
	{"SEMICOLON", int(sdl.SCANCODE_SEMICOLON)},
	{"APOSTROPHE", int(sdl.SCANCODE_APOSTROPHE)},
	{"GRAVE", int(sdl.SCANCODE_GRAVE)},
	{"COMMA", int(sdl.SCANCODE_COMMA)},
	{"PERIOD", int(sdl.SCANCODE_PERIOD)},
	{"SLASH", int(sdl.SCANCODE_SLASH)},
	{"CAPSLOCK", int(sdl.SCANCODE_CAPSLOCK)},
	{"F1", int(sdl.SCANCODE_F1)},
	{"F2", int(sdl.SCANCODE_F2)},
	{"F3", int(sdl.SCANCODE_F3)},
	{"F4", int(sdl.SCANCODE_F4)},
	{"F5", int(sdl.SCANCODE_F5)},
	{"F6", int(sdl.SCANCODE_F6)},
	{"F7", int(sdl.SCANCODE_F7)},
	{"F8", int(sdl.SCANCODE_F8)},
	{"F9", int(sdl.SCANCODE_F9)},
	{"F10", int(sdl.SCANCODE_F10)},
	{"F11", int(sdl.SCANCODE_F11)},
	{"F12", int(sdl.SCANCODE_F12)},
	{"PRINTSCREEN", int(sdl.SCANCODE_PRINTSCREEN)},
	{"SCROLLLOCK", int(sdl.SCANCODE_SCROLLLOCK)},
	{"PAUSE", int(sdl.SCANCODE_PAUSE)},
	{"INSERT", int(sdl.SCANCODE_INSERT)},
	{"HOME", int(sdl.SCANCODE_HOME)},
	{"PAGEUP", int(sdl.SCANCODE_PAGEUP)},
	{"DELETE", int(sdl.SCANCODE_DELETE)},
	{"END", int(sdl.SCANCODE_END)},
	{"PAGEDOWN", int(sdl.SCANCODE_PAGEDOWN)},
	{"RIGHT", int(sdl.SCANCODE_RIGHT)},
	{"LEFT", int(sdl.SCANCODE_LEFT)},
	{"DOWN", int(sdl.SCANCODE_DOWN)},
	{"UP", int(sdl.SCANCODE_UP)},
	{"NUMLOCKCLEAR", int(sdl.SCANCODE_NUMLOCKCLEAR)},
	{"KP_DIVIDE", int(sdl.SCANCODE_KP_DIVIDE)},
	{"KP_MULTIPLY", int(sdl.SCANCODE_KP_MULTIPLY)},
	{"KP_MINUS", int(sdl.SCANCODE_KP_MINUS)},
	{"KP_PLUS", int(sdl.SCANCODE_KP_PLUS)},
	{"KP_ENTER", int(sdl.SCANCODE_KP_ENTER)},
	{"KP_1", int(sdl.SCANCODE_KP_1)},
	{"KP_2", int(sdl.SCANCODE_KP_2)},
	{"KP_3", int(sdl.SCANCODE_KP_3)},
	{"KP_4", int(sdl.SCANCODE_KP_4)},
	{"KP_5", int(sdl.SCANCODE_KP_5)},
	{"KP_6", int(sdl.SCANCODE_KP_6)},
	{"KP_7", int(sdl.SCANCODE_KP_7)},
	{"KP_8", int(sdl.SCANCODE_KP_8)},
	{"KP_9", int(sdl.SCANCODE_KP_9)},
	{"KP_0", int(sdl.SCANCODE_KP_0)},
	{"KP_PERIOD", int(sdl.SCANCODE_KP_PERIOD)},
	{"NONUSBACKSLASH", int(sdl.SCANCODE_NONUSBACKSLASH)},
	{"APPLICATION", int(sdl.SCANCODE_APPLICATION)},
	{"POWER", int(sdl.SCANCODE_POWER)},
	{"KP_EQUALS", int(sdl.SCANCODE_KP_EQUALS)},
	{"F13", int(sdl.SCANCODE_F13)},
	{"F14", int(sdl.SCANCODE_F14)},
	{"F15", int(sdl.SCANCODE_F15)},
	{"F16", int(sdl.SCANCODE_F16)},
	{"F17", int(sdl.SCANCODE_F17)},
	{"F18", int(sdl.SCANCODE_F18)},
	{"F19", int(sdl.SCANCODE_F19)},
	{"F20", int(sdl.SCANCODE_F20)},
	{"F21", int(sdl.SCANCODE_F21)},
	{"F22", int(sdl.SCANCODE_F22)},
	{"F23", int(sdl.SCANCODE_F23)},
	{"F24", int(sdl.SCANCODE_F24)},
	{"EXECUTE", int(sdl.SCANCODE_EXECUTE)},
	{"HELP", int(sdl.SCANCODE_HELP)},
	{"MENU", int(sdl.SCANCODE_MENU)},
	{"SELECT", int(sdl.SCANCODE_SELECT)},
	{"STOP", int(sdl.SCANCODE_STOP)},
	{"AGAIN", int(sdl.SCANCODE_AGAIN)},
	{"UNDO", int(sdl.SCANCODE_UNDO)},
	{"CUT", int(sdl.SCANCODE_CUT)},
	{"COPY", int(sdl.SCANCODE_COPY)},
	{"PASTE", int(sdl.SCANCODE_PASTE)},
	{"FIND", int(sdl.SCANCODE_FIND)},
	{"MUTE", int(sdl.SCANCODE_MUTE)},
	{"VOLUMEUP", int(sdl.SCANCODE_VOLUMEUP)},
	{"VOLUMEDOWN", int(sdl.SCANCODE_VOLUMEDOWN)},
	{"KP_COMMA", int(sdl.SCANCODE_KP_COMMA)},
	{"KP_EQUALSAS400", int(sdl.SCANCODE_KP_EQUALSAS400)},
	{"INTERNATIONAL1", int(sdl.SCANCODE_INTERNATIONAL1)},
	{"INTERNATIONAL2", int(sdl.SCANCODE_INTERNATIONAL2)},
	{"INTERNATIONAL3", int(sdl.SCANCODE_INTERNATIONAL3)},
	{"INTERNATIONAL4", int(sdl.SCANCODE_INTERNATIONAL4)},
	{"INTERNATIONAL5", int(sdl.SCANCODE_INTERNATIONAL5)},
	{"INTERNATIONAL6", int(sdl.SCANCODE_INTERNATIONAL6)},
	{"INTERNATIONAL7", int(sdl.SCANCODE_INTERNATIONAL7)},
	{"INTERNATIONAL8", int(sdl.SCANCODE_INTERNATIONAL8)},
	{"INTERNATIONAL9", int(sdl.SCANCODE_INTERNATIONAL9)},
	{"LANG1", int(sdl.SCANCODE_LANG1)},
	{"LANG2", int(sdl.SCANCODE_LANG2)},
	{"LANG3", int(sdl.SCANCODE_LANG3)},
	{"LANG4", int(sdl.SCANCODE_LANG4)},
	{"LANG5", int(sdl.SCANCODE_LANG5)},
	{"LANG6", int(sdl.SCANCODE_LANG6)},
	{"LANG7", int(sdl.SCANCODE_LANG7)},
	{"LANG8", int(sdl.SCANCODE_LANG8)},
	{"LANG9", int(sdl.SCANCODE_LANG9)},
	{"ALTERASE", int(sdl.SCANCODE_ALTERASE)},
	{"SYSREQ", int(sdl.SCANCODE_SYSREQ)},
	{"CANCEL", int(sdl.SCANCODE_CANCEL)},
	{"CLEAR", int(sdl.SCANCODE_CLEAR)},
	{"PRIOR", int(sdl.SCANCODE_PRIOR)},
	{"RETURN2", int(sdl.SCANCODE_RETURN2)},
	{"SEPARATOR", int(sdl.SCANCODE_SEPARATOR)},
	{"OUT", int(sdl.SCANCODE_OUT)},
	{"OPER", int(sdl.SCANCODE_OPER)},
	{"CLEARAGAIN", int(sdl.SCANCODE_CLEARAGAIN)},
	{"CRSEL", int(sdl.SCANCODE_CRSEL)},
	{"EXSEL", int(sdl.SCANCODE_EXSEL)},
	{"KP_00", int(sdl.SCANCODE_KP_00)},
	{"KP_000", int(sdl.SCANCODE_KP_000)},
	{"THOUSANDSSEPARATOR", int(sdl.SCANCODE_THOUSANDSSEPARATOR)},
	{"DECIMALSEPARATOR", int(sdl.SCANCODE_DECIMALSEPARATOR)},
	{"CURRENCYUNIT", int(sdl.SCANCODE_CURRENCYUNIT)},
	{"CURRENCYSUBUNIT", int(sdl.SCANCODE_CURRENCYSUBUNIT)},
	{"KP_LEFTPAREN", int(sdl.SCANCODE_KP_LEFTPAREN)},
	{"KP_RIGHTPAREN", int(sdl.SCANCODE_KP_RIGHTPAREN)},
	{"KP_LEFTBRACE", int(sdl.SCANCODE_KP_LEFTBRACE)},
	{"KP_RIGHTBRACE", int(sdl.SCANCODE_KP_RIGHTBRACE)},
	{"KP_TAB", int(sdl.SCANCODE_KP_TAB)},
	{"KP_BACKSPACE", int(sdl.SCANCODE_KP_BACKSPACE)},
	{"KP_A", int(sdl.SCANCODE_KP_A)},
	{"KP_B", int(sdl.SCANCODE_KP_B)},
	{"KP_C", int(sdl.SCANCODE_KP_C)},
	{"KP_D", int(sdl.SCANCODE_KP_D)},
	{"KP_E", int(sdl.SCANCODE_KP_E)},
	{"KP_F", int(sdl.SCANCODE_KP_F)},
	{"KP_XOR", int(sdl.SCANCODE_KP_XOR)},
	{"KP_POWER", int(sdl.SCANCODE_KP_POWER)},
	{"KP_PERCENT", int(sdl.SCANCODE_KP_PERCENT)},
	{"KP_LESS", int(sdl.SCANCODE_KP_LESS)},
	{"KP_GREATER", int(sdl.SCANCODE_KP_GREATER)},
	{"KP_AMPERSAND", int(sdl.SCANCODE_KP_AMPERSAND)},
	{"KP_DBLAMPERSAND", int(sdl.SCANCODE_KP_DBLAMPERSAND)},
	{"KP_VERTICALBAR", int(sdl.SCANCODE_KP_VERTICALBAR)},
	{"KP_DBLVERTICALBAR", int(sdl.SCANCODE_KP_DBLVERTICALBAR)},
	{"KP_COLON", int(sdl.SCANCODE_KP_COLON)},
	{"KP_HASH", int(sdl.SCANCODE_KP_HASH)},
	{"KP_SPACE", int(sdl.SCANCODE_KP_SPACE)},
	{"KP_AT", int(sdl.SCANCODE_KP_AT)},
	{"KP_EXCLAM", int(sdl.SCANCODE_KP_EXCLAM)},
	{"KP_MEMSTORE", int(sdl.SCANCODE_KP_MEMSTORE)},
	{"KP_MEMRECALL", int(sdl.SCANCODE_KP_MEMRECALL)},
	{"KP_MEMCLEAR", int(sdl.SCANCODE_KP_MEMCLEAR)},
	{"KP_MEMADD", int(sdl.SCANCODE_KP_MEMADD)},
	{"KP_MEMSUBTRACT", int(sdl.SCANCODE_KP_MEMSUBTRACT)},
	{"KP_MEMMULTIPLY", int(sdl.SCANCODE_KP_MEMMULTIPLY)},
	{"KP_MEMDIVIDE", int(sdl.SCANCODE_KP_MEMDIVIDE)},
	{"KP_PLUSMINUS", int(sdl.SCANCODE_KP_PLUSMINUS)},
	{"KP_CLEAR", int(sdl.SCANCODE_KP_CLEAR)},
	{"KP_CLEARENTRY", int(sdl.SCANCODE_KP_CLEARENTRY)},
	{"KP_BINARY", int(sdl.SCANCODE_KP_BINARY)},
	{"KP_OCTAL", int(sdl.SCANCODE_KP_OCTAL)},
	{"KP_DECIMAL", int(sdl.SCANCODE_KP_DECIMAL)},
	{"KP_HEXADECIMAL", int(sdl.SCANCODE_KP_HEXADECIMAL)},
	{"LCTRL", int(sdl.SCANCODE_LCTRL)},
	{"LSHIFT", int(sdl.SCANCODE_LSHIFT)},
	{"LALT", int(sdl.SCANCODE_LALT)},
	{"LGUI", int(sdl.SCANCODE_LGUI)},
	{"RCTRL", int(sdl.SCANCODE_RCTRL)},
	{"RSHIFT", int(sdl.SCANCODE_RSHIFT)},
	{"RALT", int(sdl.SCANCODE_RALT)},
	{"RGUI", int(sdl.SCANCODE_RGUI)},
	{"MODE", int(sdl.SCANCODE_MODE)},
	{"AUDIONEXT", int(sdl.SCANCODE_AUDIONEXT)},
	{"AUDIOPREV", int(sdl.SCANCODE_AUDIOPREV)},
	{"AUDIOSTOP", int(sdl.SCANCODE_AUDIOSTOP)},
	{"AUDIOPLAY", int(sdl.SCANCODE_AUDIOPLAY)},
	{"AUDIOMUTE", int(sdl.SCANCODE_AUDIOMUTE)},
	{"MEDIASELECT", int(sdl.SCANCODE_MEDIASELECT)},
	{"WWW", int(sdl.SCANCODE_WWW)},
	{"MAIL", int(sdl.SCANCODE_MAIL)},
	{"CALCULATOR", int(sdl.SCANCODE_CALCULATOR)},
	{"COMPUTER", int(sdl.SCANCODE_COMPUTER)},
	{"AC_SEARCH", int(sdl.SCANCODE_AC_SEARCH)},
	{"AC_HOME", int(sdl.SCANCODE_AC_HOME)},
	{"AC_BACK", int(sdl.SCANCODE_AC_BACK)},
	{"AC_FORWARD", int(sdl.SCANCODE_AC_FORWARD)},
	{"AC_STOP", int(sdl.SCANCODE_AC_STOP)},
	{"AC_REFRESH", int(sdl.SCANCODE_AC_REFRESH)},
	{"AC_BOOKMARKS", int(sdl.SCANCODE_AC_BOOKMARKS)},
	{"BRIGHTNESSDOWN", int(sdl.SCANCODE_BRIGHTNESSDOWN)},
	{"BRIGHTNESSUP", int(sdl.SCANCODE_BRIGHTNESSUP)},
	{"DISPLAYSWITCH", int(sdl.SCANCODE_DISPLAYSWITCH)},
	{"KBDILLUMTOGGLE", int(sdl.SCANCODE_KBDILLUMTOGGLE)},
	{"KBDILLUMDOWN", int(sdl.SCANCODE_KBDILLUMDOWN)},
	{"KBDILLUMUP", int(sdl.SCANCODE_KBDILLUMUP)},
	{"EJECT", int(sdl.SCANCODE_EJECT)},
	{"SLEEP", int(sdl.SCANCODE_SLEEP)},
	{"APP1", int(sdl.SCANCODE_APP1)},
	{"APP2", int(sdl.SCANCODE_APP2)},
}

// Keycodes is the static table of logical key identifiers.
var Keycodes = []Constant{
	{"RETURN", int(sdl.K_RETURN)},
	{"ESCAPE", int(sdl.K_ESCAPE)},
	{"BACKSPACE", int(sdl.K_BACKSPACE)},
	{"TAB", int(sdl.K_TAB)},
	{"SPACE", int(sdl.K_SPACE)},
	{"EXCLAIM", int(sdl.K_EXCLAIM)},
	{"QUOTEDBL", int(sdl.K_QUOTEDBL)},
	{"HASH", int(sdl.K_HASH)},
	{"PERCENT", int(sdl.K_PERCENT)},
	{"DOLLAR", int(sdl.K_DOLLAR)},
	{"AMPERSAND", int(sdl.K_AMPERSAND)},
	{"QUOTE", int(sdl.K_QUOTE)},
	{"LEFTPAREN", int(sdl.K_LEFTPAREN)},
	{"RIGHTPAREN", int(sdl.K_RIGHTPAREN)},
	{"ASTERISK", int(sdl.K_ASTERISK)},
	{"PLUS", int(sdl.K_PLUS)},
	{"COMMA", int(sdl.K_COMMA)},
	{"MINUS", int(sdl.K_MINUS)},
	{"PERIOD", int(sdl.K_PERIOD)},
	{"SLASH", int(sdl.K_SLASH)},
	{"0", int(sdl.K_0)},
	{"1", int(sdl.K_1)},
	{"2", int(sdl.K_2)},
	{"3", int(sdl.K_3)},
	{"4", int(sdl.K_4)},
	{"5", int(sdl.K_5)},
	{"6", int(sdl.K_6)},
	{"7", int(sdl.K_7)},
	{"8", int(sdl.K_8)},
	{"9", int(sdl.K_9)},
	{"COLON", int(sdl.K_COLON)},
	{"SEMICOLON", int(sdl.K_SEMICOLON)},
	{"LESS", int(sdl.K_LESS)},
	{"EQUALS", int(sdl.K_EQUALS)},
	{"GREATER", int(sdl.K_GREATER)},
	{"QUESTION", int(sdl.K_QUESTION)},
	{"AT", int(sdl.K_AT)},
	{"LEFTBRACKET", int(sdl.K_LEFTBRACKET)},
	{"BACKSLASH", int(sdl.K_BACKSLASH)},
	{"RIGHTBRACKET", int(sdl.K_RIGHTBRACKET)},
	{"CARET", int(sdl.K_CARET)},
	{"UNDERSCORE", int(sdl.K_UNDERSCORE)},
	{"BACKQUOTE", int(sdl.K_BACKQUOTE)},
	{"a", int(sdl.K_a)},
	{"b", int(sdl.K_b)},
	{"c", int(sdl.K_c)},
	{"d", int(sdl.K_d)},
	{"e", int(sdl.K_e)},
	{"f", int(sdl.K_f)},
	{"g", int(sdl.K_g)},
	{"h", int(sdl.K_h)},
	{"i", int(sdl.K_i)},
	{"j", int(sdl.K_j)},
	{"k", int(sdl.K_k)},
	{"l", int(sdl.K_l)},
	{"m", int(sdl.K_m)},
	{"n", int(sdl.K_n)},
	{"o", int(sdl.K_o)},
	{"p", int(sdl.K_p)},
	{"q", int(sdl.K_q)},
	{"r", int(sdl.K_r)},
	{"s", int(sdl.K_s)},
	{"t", int(sdl.K_t)},
	{"u", int(sdl.K_u)},
	{"v", int(sdl.K_v)},
	{"w", int(sdl.K_w)},
	{"x", int(sdl.K_x)},
	{"y", int(sdl.K_y)},
	{"z", int(sdl.K_z)},
	{"CAPSLOCK", int(sdl.K_CAPSLOCK)},
	{"F1", int(sdl.K_F1)},
	{"F2", int(sdl.K_F2)},
	{"F3", int(sdl.K_F3)},
	{"F4", int(sdl.K_F4)},
	{"F5", int(sdl.K_F5)},
	{"F6", int(sdl.K_F6)},
	{"F7", int(sdl.K_F7)},
	{"F8", int(sdl.K_F8)},
	{"F9", int(sdl.K_F9)},
	{"F10", int(sdl.K_F10)},
	{"F11", int(sdl.K_F11)},
	{"F12", int(sdl.K_F12)},
	{"PRINTSCREEN", int(sdl.K_PRINTSCREEN)},
	{"SCROLLLOCK", int(sdl.K_SCROLLLOCK)},
	{"PAUSE", int(sdl.K_PAUSE)},
	{"INSERT", int(sdl.K_INSERT)},
	{"HOME", int(sdl.K_HOME)},
	{"PAGEUP", int(sdl.K_PAGEUP)},
	{"DELETE", int(sdl.K_DELETE)},
	{"END", int(sdl.K_END)},
	{"PAGEDOWN", int(sdl.K_PAGEDOWN)},
	{"RIGHT", int(sdl.K_RIGHT)},
	{"LEFT", int(sdl.K_LEFT)},
	{"DOWN", int(sdl.K_DOWN)},
	{"UP", int(sdl.K_UP)},
	{"NUMLOCKCLEAR", int(sdl.K_NUMLOCKCLEAR)},
	{"KP_DIVIDE", int(sdl.K_KP_DIVIDE)},
	{"KP_MULTIPLY", int(sdl.K_KP_MULTIPLY)},
	{"KP_MINUS", int(sdl.K_KP_MINUS)},
	{"KP_PLUS", int(sdl.K_KP_PLUS)},
	{"KP_ENTER", int(sdl.K_KP_ENTER)},
	{"KP_1", int(sdl.K_KP_1)},
	{"KP_2", int(sdl.K_KP_2)},
	{"KP_3", int(sdl.K_KP_3)},
	{"KP_4", int(sdl.K_KP_4)},
	{"KP_5", int(sdl.K_KP_5)},
	{"KP_6", int(sdl.K_KP_6)},
	{"KP_7", int(sdl.K_KP_7)},
	{"KP_8", int(sdl.K_KP_8)},
	{"KP_9", int(sdl.K_KP_9)},
	{"KP_0", int(sdl.K_KP_0)},
	{"KP_PERIOD", int(sdl.K_KP_PERIOD)},
	{"APPLICATION", int(sdl.K_APPLICATION)},
	{"POWER", int(sdl.K_POWER)},
	{"KP_EQUALS", int(sdl.K_KP_EQUALS)},
	{"F13", int(sdl.K_F13)},
	{"F14", int(sdl.K_F14)},
	{"F15", int(sdl.K_F15)},
	{"F16", int(sdl.K_F16)},
	{"F17", int(sdl.K_F17)},
	{"F18", int(sdl.K_F18)},
	{"F19", int(sdl.K_F19)},
	{"F20", int(sdl.K_F20)},
	{"F21", int(sdl.K_F21)},
	{"F22", int(sdl.K_F22)},
	{"F23", int(sdl.K_F23)},
	{"F24", int(sdl.K_F24)},
	{"EXECUTE", int(sdl.K_EXECUTE)},
	{"HELP", int(sdl.K_HELP)},
	{"MENU", int(sdl.K_MENU)},
	{"SELECT", int(sdl.K_SELECT)},
	{"STOP", int(sdl.K_STOP)},
	{"AGAIN", int(sdl.K_AGAIN)},
	{"UNDO", int(sdl.K_UNDO)},
	{"CUT", int(sdl.K_CUT)},
	{"COPY", int(sdl.K_COPY)},
	{"PASTE", int(sdl.K_PASTE)},
	{"FIND", int(sdl.K_FIND)},
	{"MUTE", int(sdl.K_MUTE)},
	{"VOLUMEUP", int(sdl.K_VOLUMEUP)},
	{"VOLUMEDOWN", int(sdl.K_VOLUMEDOWN)},
	{"KP_COMMA", int(sdl.K_KP_COMMA)},
	{"KP_EQUALSAS400", int(sdl.K_KP_EQUALSAS400)},
	{"ALTERASE", int(sdl.K_ALTERASE)},
	{"SYSREQ", int(sdl.K_SYSREQ)},
	{"CANCEL", int(sdl.K_CANCEL)},
	{"CLEAR", int(sdl.K_CLEAR)},
	{"PRIOR", int(sdl.K_PRIOR)},
	{"RETURN2", int(sdl.K_RETURN2)},
	{"SEPARATOR", int(sdl.K_SEPARATOR)},
	{"OUT", int(sdl.K_OUT)},
	{"OPER", int(sdl.K_OPER)},
	{"CLEARAGAIN", int(sdl.K_CLEARAGAIN)},
	{"CRSEL", int(sdl.K_CRSEL)},
	{"EXSEL", int(sdl.K_EXSEL)},
	{"KP_00", int(sdl.K_KP_00)},
	{"KP_000", int(sdl.K_KP_000)},
	{"THOUSANDSSEPARATOR", int(sdl.K_THOUSANDSSEPARATOR)},
	{"DECIMALSEPARATOR", int(sdl.K_DECIMALSEPARATOR)},
	{"CURRENCYUNIT", int(sdl.K_CURRENCYUNIT)},
	{"CURRENCYSUBUNIT", int(sdl.K_CURRENCYSUBUNIT)},
	{"KP_LEFTPAREN", int(sdl.K_KP_LEFTPAREN)},
	{"KP_RIGHTPAREN", int(sdl.K_KP_RIGHTPAREN)},
	{"KP_LEFTBRACE", int(sdl.K_KP_LEFTBRACE)},
	{"KP_RIGHTBRACE", int(sdl.K_KP_RIGHTBRACE)},
	{"KP_TAB", int(sdl.K_KP_TAB)},
	{"KP_BACKSPACE", int(sdl.K_KP_BACKSPACE)},
	{"KP_A", int(sdl.K_KP_A)},
	{"KP_B", int(sdl.K_KP_B)},
	{"KP_C", int(sdl.K_KP_C)},
	{"KP_D", int(sdl.K_KP_D)},
	{"KP_E", int(sdl.K_KP_E)},
	{"KP_F", int(sdl.K_KP_F)},
	{"KP_XOR", int(sdl.K_KP_XOR)},
	{"KP_POWER", int(sdl.K_KP_POWER)},
	{"KP_PERCENT", int(sdl.K_KP_PERCENT)},
	{"KP_LESS", int(sdl.K_KP_LESS)},
	{"KP_GREATER", int(sdl.K_KP_GREATER)},
	{"KP_AMPERSAND", int(sdl.K_KP_AMPERSAND)},
	{"KP_DBLAMPERSAND", int(sdl.K_KP_DBLAMPERSAND)},
	{"KP_VERTICALBAR", int(sdl.K_KP_VERTICALBAR)},
	{"KP_DBLVERTICALBAR", int(sdl.K_KP_DBLVERTICALBAR)},
	{"KP_COLON", int(sdl.K_KP_COLON)},
	{"KP_HASH", int(sdl.K_KP_HASH)},
	{"KP_SPACE", int(sdl.K_KP_SPACE)},
	{"KP_AT", int(sdl.K_KP_AT)},
	{"KP_EXCLAM", int(sdl.K_KP_EXCLAM)},
	{"KP_MEMSTORE", int(sdl.K_KP_MEMSTORE)},
	{"KP_MEMRECALL", int(sdl.K_KP_MEMRECALL)},
	{"KP_MEMCLEAR", int(sdl.K_KP_MEMCLEAR)},
	{"KP_MEMADD", int(sdl.K_KP_MEMADD)},
	{"KP_MEMSUBTRACT", int(sdl.K_KP_MEMSUBTRACT)},
	{"KP_MEMMULTIPLY", int(sdl.K_KP_MEMMULTIPLY)},
	{"KP_MEMDIVIDE", int(sdl.K_KP_MEMDIVIDE)},
	{"KP_PLUSMINUS", int(sdl.K_KP_PLUSMINUS)},
	{"KP_CLEAR", int(sdl.K_KP_CLEAR)},
	{"KP_CLEARENTRY", int(sdl.K_KP_CLEARENTRY)},
	{"KP_BINARY", int(sdl.K_KP_BINARY)},
	{"KP_OCTAL", int(sdl.K_KP_OCTAL)},
	{"KP_DECIMAL", int(sdl.K_KP_DECIMAL)},
	{"KP_HEXADECIMAL", int(sdl.K_KP_HEXADECIMAL)},
	{"LCTRL", int(sdl.K_LCTRL)},
	{"LSHIFT", int(sdl.K_LSHIFT)},
	{"LALT", int(sdl.K_LALT)},
	{"LGUI", int(sdl.K_LGUI)},
	{"RCTRL", int(sdl.K_RCTRL)},
	{"RSHIFT", int(sdl.K_RSHIFT)},
	{"RALT", int(sdl.K_RALT)},
	{"RGUI", int(sdl.K_RGUI)},
	{"MODE", int(sdl.K_MODE)},
	{"AUDIONEXT", int(sdl.K_AUDIONEXT)},
	{"AUDIOPREV", int(sdl.K_AUDIOPREV)},
	{"AUDIOSTOP", int(sdl.K_AUDIOSTOP)},
	{"AUDIOPLAY", int(sdl.K_AUDIOPLAY)},
	{"AUDIOMUTE", int(sdl.K_AUDIOMUTE)},
	{"MEDIASELECT", int(sdl.K_MEDIASELECT)},
	{"WWW", int(sdl.K_WWW)},
	{"MAIL", int(sdl.K_MAIL)},
	{"CALCULATOR", int(sdl.K_CALCULATOR)},
	{"COMPUTER", int(sdl.K_COMPUTER)},
	{"AC_SEARCH", int(sdl.K_AC_SEARCH)},
	{"AC_HOME", int(sdl.K_AC_HOME)},
	{"AC_BACK", int(sdl.K_AC_BACK)},
	{"AC_FORWARD", int(sdl.K_AC_FORWARD)},
	{"AC_STOP", int(sdl.K_AC_STOP)},
	{"AC_REFRESH", int(sdl.K_AC_REFRESH)},
	{"AC_BOOKMARKS", int(sdl.K_AC_BOOKMARKS)},
	{"BRIGHTNESSDOWN", int(sdl.K_BRIGHTNESSDOWN)},
	{"BRIGHTNESSUP", int(sdl.K_BRIGHTNESSUP)},
	{"DISPLAYSWITCH", int(sdl.K_DISPLAYSWITCH)},
	{"KBDILLUMTOGGLE", int(sdl.K_KBDILLUMTOGGLE)},
	{"KBDILLUMDOWN", int(sdl.K_KBDILLUMDOWN)},
	{"KBDILLUMUP", int(sdl.K_KBDILLUMUP)},
	{"EJECT", int(sdl.K_EJECT)},
	{"SLEEP", int(sdl.K_SLEEP)},
}
