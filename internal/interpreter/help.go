package interpreter

const helpText = `Available commands:
  PLACE x,y,DIRECTION  place the rover at x,y facing NORTH, EAST, SOUTH or WEST
  MOVE                 move the rover one unit forwards
  LEFT                 rotate the rover 90 degrees to the left
  RIGHT                rotate the rover 90 degrees to the right
  REPORT               print the rover position and heading
  FILE path            read commands from the given file
  HELP                 show this message
  EXIT                 leave the simulator
`
