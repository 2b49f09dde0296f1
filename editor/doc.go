//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor implements the core of ledit: a Buffer of text rows, a
// Viewport that maps part of the buffer onto a fixed grid of screen cells,
// and an Editor that applies commands to both and describes the result
// for a renderer. Out-of-range positions are clamped or ignored rather
// than reported as errors.
package editor
